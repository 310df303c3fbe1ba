package service

import (
	"context"

	"github.com/finwell/finwell-server/internal/models"
)

// SaveSnapshot appends one snapshot to the owner's history. It is
// fire-and-forget: a failed insert is logged and dropped so the write
// can never block or break a caller's primary path. There is no retry
// or queuing; a durable outbox would be the production hardening if
// snapshot loss ever matters.
func (s *Service) SaveSnapshot(ctx context.Context, ownerID string, snap *models.NetWorthSnapshot) {
	if ownerID == "" || snap == nil {
		s.log.Warn("Skipping snapshot write: missing owner or snapshot")
		return
	}

	// Net worth is derived, never trusted from the caller.
	snap.NetWorth = snap.TotalAssets - snap.TotalLiabilities

	if err := s.stores.InsertSnapshot(ctx, ownerID, snap); err != nil {
		s.log.Errorf("Failed to persist snapshot for owner %s: %v", ownerID, err)
		return
	}
	s.log.Infof("Snapshot persisted for owner %s (net worth %.2f)", ownerID, snap.NetWorth)
}

// History returns the owner's persisted snapshot series for the last
// given number of months, ascending by date.
func (s *Service) History(ctx context.Context, ownerID string, months int) ([]models.HistoricalPoint, error) {
	from := s.now().AddDate(0, -months, 0)
	return s.stores.SnapshotHistory(ctx, ownerID, from)
}
