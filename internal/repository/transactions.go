package repository

import (
	"context"
	"fmt"

	"github.com/finwell/finwell-server/internal/models"
)

// SumCurrentMonthByType sums the owner's current-month ledger entries
// split by direction. Months with no activity yield zero sums, not an
// error.
func (r *Repository) SumCurrentMonthByType(ctx context.Context, ownerID string) (models.MonthlyFlow, error) {
	var flow models.MonthlyFlow
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM finwell.transactions
		WHERE owner_id = $1
		  AND transaction_date >= date_trunc('month', CURRENT_DATE)`
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&flow.Income, &flow.Expense)
	if err != nil {
		return models.MonthlyFlow{}, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return flow, nil
}
