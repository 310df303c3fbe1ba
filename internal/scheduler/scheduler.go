package scheduler

import (
	"context"

	"github.com/finwell/finwell-server/internal/config"
	"github.com/finwell/finwell-server/internal/integrations/balancehub"
	"github.com/finwell/finwell-server/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// OwnerDirectory lists owners and stores refreshed provider balances.
type OwnerDirectory interface {
	ListOwners(ctx context.Context) ([]string, error)
	UpdateConnectedBalance(ctx context.Context, ownerID, accountRef string, balance float64) error
}

// BalanceFetcher pulls current balances from the account-linking
// provider.
type BalanceFetcher interface {
	FetchBalances(ownerRef string) ([]balancehub.ProviderBalance, error)
}

// Snapshotter computes and persists net worth snapshots.
type Snapshotter interface {
	ComputeNetWorth(ctx context.Context, ownerID string) *models.NetWorthSnapshot
	SaveSnapshot(ctx context.Context, ownerID string, snap *models.NetWorthSnapshot)
}

// Scheduler runs the nightly balance refresh and snapshot sweep. Both
// jobs are best-effort: a failure for one owner is logged and the sweep
// continues with the next.
type Scheduler struct {
	cron    *cron.Cron
	dir     OwnerDirectory
	snapper Snapshotter
	hub     BalanceFetcher
	log     *logrus.Logger
}

// NewScheduler initializes a new scheduler
func NewScheduler(dir OwnerDirectory, snapper Snapshotter, hub BalanceFetcher, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		dir:     dir,
		snapper: snapper,
		hub:     hub,
		log:     log,
	}
}

// Start registers the cron jobs and starts the scheduler
func (s *Scheduler) Start(cfg *config.Config) error {
	if _, err := s.cron.AddFunc(cfg.RefreshSchedule, s.RefreshBalances); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(cfg.SnapshotSchedule, s.SnapshotSweep); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Scheduler started (refresh %q, snapshot %q)", cfg.RefreshSchedule, cfg.SnapshotSchedule)
	return nil
}

// Stop stops the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RefreshBalances pulls current balances from BalanceHub for every
// owner with linked accounts and updates the connected-accounts store.
func (s *Scheduler) RefreshBalances() {
	ctx := context.Background()
	owners, err := s.dir.ListOwners(ctx)
	if err != nil {
		s.log.Errorf("Balance refresh aborted, cannot list owners: %v", err)
		return
	}

	for _, owner := range owners {
		balances, err := s.hub.FetchBalances(owner)
		if err != nil {
			s.log.Warnf("Balance refresh failed for owner %s: %v", owner, err)
			continue
		}
		for _, b := range balances {
			if err := s.dir.UpdateConnectedBalance(ctx, owner, b.AccountRef, b.Balance); err != nil {
				s.log.Warnf("Failed to store balance %s for owner %s: %v", b.AccountRef, owner, err)
			}
		}
	}
	s.log.Infof("Balance refresh completed for %d owners", len(owners))
}

// SnapshotSweep computes and persists a snapshot for every owner with
// holdings on record.
func (s *Scheduler) SnapshotSweep() {
	ctx := context.Background()
	owners, err := s.dir.ListOwners(ctx)
	if err != nil {
		s.log.Errorf("Snapshot sweep aborted, cannot list owners: %v", err)
		return
	}

	for _, owner := range owners {
		snap := s.snapper.ComputeNetWorth(ctx, owner)
		s.snapper.SaveSnapshot(ctx, owner, snap)
	}
	s.log.Infof("Snapshot sweep completed for %d owners", len(owners))
}
