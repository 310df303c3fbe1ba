package repository

import (
	"context"
	"fmt"

	"github.com/finwell/finwell-server/internal/models"
)

// ListActiveAssets retrieves the owner's active manual assets
func (r *Repository) ListActiveAssets(ctx context.Context, ownerID string) ([]models.Asset, error) {
	query := `
		SELECT id, owner_id, name, category, type, current_value, original_value, active, created_at, updated_at
		FROM finwell.assets
		WHERE owner_id = $1 AND active = TRUE`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Category, &a.Type,
			&a.CurrentValue, &a.OriginalValue, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
