package repository

import (
	"context"
	"fmt"

	"github.com/finwell/finwell-server/internal/models"
)

// ListActiveLiabilities retrieves the owner's active manual liabilities
func (r *Repository) ListActiveLiabilities(ctx context.Context, ownerID string) ([]models.Liability, error) {
	query := `
		SELECT id, owner_id, name, category, type, current_balance, original_balance,
		       interest_rate, monthly_payment, due_date, active, created_at, updated_at
		FROM finwell.liabilities
		WHERE owner_id = $1 AND active = TRUE`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []models.Liability
	for rows.Next() {
		var l models.Liability
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Name, &l.Category, &l.Type,
			&l.CurrentBalance, &l.OriginalBalance, &l.InterestRate, &l.MonthlyPayment,
			&l.DueDate, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan liability: %w", err)
		}
		liabilities = append(liabilities, l)
	}
	return liabilities, rows.Err()
}
