package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned when an owner has no persisted snapshot in
// the requested range. Callers treat it as an empty result, not a failure.
var ErrNoSnapshot = errors.New("no snapshot found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListOwners returns the distinct owners that have any holdings on
// record. Used by the scheduled jobs to sweep all accounts.
func (r *Repository) ListOwners(ctx context.Context) ([]string, error) {
	query := `
		SELECT owner_id FROM finwell.assets WHERE active = TRUE
		UNION
		SELECT owner_id FROM finwell.liabilities WHERE active = TRUE
		UNION
		SELECT owner_id FROM finwell.connected_accounts`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, owner)
	}
	return owners, rows.Err()
}
