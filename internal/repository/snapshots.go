package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finwell/finwell-server/internal/models"
)

// LatestSnapshotBefore retrieves the most recent persisted snapshot
// strictly before the cutoff date. Returns ErrNoSnapshot when the owner
// has no history in that range.
func (r *Repository) LatestSnapshotBefore(ctx context.Context, ownerID string, cutoff time.Time) (*models.NetWorthSnapshot, error) {
	snap := &models.NetWorthSnapshot{}
	var assetsJSON, liabilitiesJSON []byte
	query := `
		SELECT total_assets, total_liabilities, net_worth,
		       assets_breakdown, liabilities_breakdown,
		       monthly_income, monthly_expenses, savings_rate,
		       monthly_change, monthly_change_percentage, as_of_date
		FROM finwell.networth_snapshots
		WHERE owner_id = $1 AND as_of_date < $2
		ORDER BY as_of_date DESC
		LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, ownerID, cutoff).Scan(
		&snap.TotalAssets, &snap.TotalLiabilities, &snap.NetWorth,
		&assetsJSON, &liabilitiesJSON,
		&snap.MonthlyIncome, &snap.MonthlyExpenses, &snap.SavingsRate,
		&snap.MonthlyChange, &snap.MonthlyChangePercentage, &snap.AsOfDate)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := json.Unmarshal(assetsJSON, &snap.AssetsBreakdown); err != nil {
		return nil, fmt.Errorf("failed to decode assets breakdown: %w", err)
	}
	if err := json.Unmarshal(liabilitiesJSON, &snap.LiabilitiesBreakdown); err != nil {
		return nil, fmt.Errorf("failed to decode liabilities breakdown: %w", err)
	}
	return snap, nil
}

// InsertSnapshot appends one snapshot to the owner's history. Snapshot
// rows are immutable once written.
func (r *Repository) InsertSnapshot(ctx context.Context, ownerID string, snap *models.NetWorthSnapshot) error {
	assetsJSON, err := json.Marshal(snap.AssetsBreakdown)
	if err != nil {
		return fmt.Errorf("failed to encode assets breakdown: %w", err)
	}
	liabilitiesJSON, err := json.Marshal(snap.LiabilitiesBreakdown)
	if err != nil {
		return fmt.Errorf("failed to encode liabilities breakdown: %w", err)
	}

	query := `
		INSERT INTO finwell.networth_snapshots
			(owner_id, total_assets, total_liabilities, net_worth,
			 assets_breakdown, liabilities_breakdown,
			 monthly_income, monthly_expenses, savings_rate,
			 monthly_change, monthly_change_percentage, as_of_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP)`
	_, err = r.db.ExecContext(ctx, query, ownerID,
		snap.TotalAssets, snap.TotalLiabilities, snap.NetWorth,
		assetsJSON, liabilitiesJSON,
		snap.MonthlyIncome, snap.MonthlyExpenses, snap.SavingsRate,
		snap.MonthlyChange, snap.MonthlyChangePercentage, snap.AsOfDate)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// SnapshotHistory returns the owner's snapshot series from the given
// date onward, ascending by date, in the slim form the trend analyzer
// consumes.
func (r *Repository) SnapshotHistory(ctx context.Context, ownerID string, from time.Time) ([]models.HistoricalPoint, error) {
	query := `
		SELECT as_of_date, net_worth, total_assets, total_liabilities
		FROM finwell.networth_snapshots
		WHERE owner_id = $1 AND as_of_date >= $2
		ORDER BY as_of_date ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot history: %w", err)
	}
	defer rows.Close()

	var points []models.HistoricalPoint
	for rows.Next() {
		var p models.HistoricalPoint
		if err := rows.Scan(&p.Date, &p.NetWorth, &p.TotalAssets, &p.TotalLiabilities); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
