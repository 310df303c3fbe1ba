package service

import (
	"context"
	"time"

	"github.com/finwell/finwell-server/internal/models"
	"github.com/sirupsen/logrus"
)

// AssetStore reads manually tracked assets.
type AssetStore interface {
	ListActiveAssets(ctx context.Context, ownerID string) ([]models.Asset, error)
}

// LiabilityStore reads manually tracked liabilities.
type LiabilityStore interface {
	ListActiveLiabilities(ctx context.Context, ownerID string) ([]models.Liability, error)
}

// BalanceStore reads balances sourced from the account-linking provider.
type BalanceStore interface {
	ListConnectedBalances(ctx context.Context, ownerID string) ([]models.ConnectedAccount, error)
}

// LedgerStore reads aggregates from the transaction ledger.
type LedgerStore interface {
	SumCurrentMonthByType(ctx context.Context, ownerID string) (models.MonthlyFlow, error)
}

// SnapshotStore reads and appends persisted net worth history.
type SnapshotStore interface {
	LatestSnapshotBefore(ctx context.Context, ownerID string, cutoff time.Time) (*models.NetWorthSnapshot, error)
	InsertSnapshot(ctx context.Context, ownerID string, snap *models.NetWorthSnapshot) error
	SnapshotHistory(ctx context.Context, ownerID string, from time.Time) ([]models.HistoricalPoint, error)
}

// Stores bundles every data source the aggregation engine reads.
type Stores interface {
	AssetStore
	LiabilityStore
	BalanceStore
	LedgerStore
	SnapshotStore
}

// Service handles net worth aggregation and trend analysis
type Service struct {
	stores Stores
	log    *logrus.Logger
	now    func() time.Time
}

// NewService initializes a new service
func NewService(stores Stores, log *logrus.Logger) *Service {
	return &Service{stores: stores, log: log, now: time.Now}
}

// safeRatio divides num by den, returning 0 for a zero denominator.
// Every percentage and rate in the engine goes through this so zero
// inputs can never produce NaN or Inf.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
