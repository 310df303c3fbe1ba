package repository

import (
	"context"
	"fmt"

	"github.com/finwell/finwell-server/internal/models"
)

// ListConnectedBalances retrieves the owner's linked account balances
func (r *Repository) ListConnectedBalances(ctx context.Context, ownerID string) ([]models.ConnectedAccount, error) {
	query := `
		SELECT id, owner_id, account_ref, account_kind, balance, updated_at
		FROM finwell.connected_accounts
		WHERE owner_id = $1`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connected balances: %w", err)
	}
	defer rows.Close()

	var accounts []models.ConnectedAccount
	for rows.Next() {
		var c models.ConnectedAccount
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.AccountRef, &c.AccountKind, &c.Balance, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan connected account: %w", err)
		}
		accounts = append(accounts, c)
	}
	return accounts, rows.Err()
}

// UpdateConnectedBalance stores a freshly fetched provider balance
func (r *Repository) UpdateConnectedBalance(ctx context.Context, ownerID, accountRef string, balance float64) error {
	query := `
		UPDATE finwell.connected_accounts
		SET balance = $3, updated_at = CURRENT_TIMESTAMP
		WHERE owner_id = $1 AND account_ref = $2`
	if _, err := r.db.ExecContext(ctx, query, ownerID, accountRef, balance); err != nil {
		return fmt.Errorf("failed to update connected balance: %w", err)
	}
	return nil
}
