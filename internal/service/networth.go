package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/finwell/finwell-server/internal/models"
	"github.com/finwell/finwell-server/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ComputeNetWorth aggregates the owner's assets, liabilities, connected
// balances and current-month cash flow into a fresh snapshot. It is
// total: an unauthenticated owner or a failed live read degrades to the
// demo snapshot instead of an error, so callers never observe a failure
// from this path. A missing prior snapshot is treated as zero, not as a
// failure.
func (s *Service) ComputeNetWorth(ctx context.Context, ownerID string) *models.NetWorthSnapshot {
	asOf := s.now()
	if ownerID == "" {
		s.log.Warn("net worth requested without an owner, serving demo snapshot")
		return DemoSnapshot(asOf)
	}

	var (
		assets      []models.Asset
		liabilities []models.Liability
		connected   []models.ConnectedAccount
		flow        models.MonthlyFlow
		previous    *models.NetWorthSnapshot
	)

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		assets, err = s.stores.ListActiveAssets(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		liabilities, err = s.stores.ListActiveLiabilities(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		connected, err = s.stores.ListConnectedBalances(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		flow, err = s.stores.SumCurrentMonthByType(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		prev, err := s.stores.LatestSnapshotBefore(gctx, ownerID, monthStart)
		if errors.Is(err, repository.ErrNoSnapshot) {
			return nil
		}
		if err != nil {
			// History is optional context, not live data: losing it
			// must not discard the four good reads.
			s.log.Warnf("Prior snapshot lookup failed for owner %s: %v", ownerID, err)
			return nil
		}
		previous = prev
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warnf("Net worth aggregation degraded to demo snapshot for owner %s: %v", ownerID, err)
		return DemoSnapshot(asOf)
	}

	var totalAssets, totalLiabilities, connectedSum float64
	for _, a := range assets {
		totalAssets += a.CurrentValue
	}
	for _, c := range connected {
		connectedSum += c.Balance
	}
	totalAssets += connectedSum
	for _, l := range liabilities {
		totalLiabilities += l.CurrentBalance
	}
	netWorth := totalAssets - totalLiabilities

	var prevNetWorth float64
	if previous != nil {
		prevNetWorth = previous.NetWorth
	}
	monthlyChange := netWorth - prevNetWorth

	return &models.NetWorthSnapshot{
		TotalAssets:             totalAssets,
		TotalLiabilities:        totalLiabilities,
		NetWorth:                netWorth,
		AssetsBreakdown:         assetsBreakdown(assets, connected, connectedSum, totalAssets),
		LiabilitiesBreakdown:    liabilitiesBreakdown(liabilities, totalLiabilities),
		MonthlyIncome:           flow.Income,
		MonthlyExpenses:         flow.Expense,
		SavingsRate:             safeRatio(flow.Income-flow.Expense, flow.Income) * 100,
		MonthlyChange:           monthlyChange,
		MonthlyChangePercentage: safeRatio(monthlyChange, prevNetWorth) * 100,
		AsOfDate:                asOf,
	}
}

// assetsBreakdown groups manual assets by category and synthesizes one
// cash entry for the connected balances. Percentages are shares of
// total assets; ordering is by amount descending for display.
func assetsBreakdown(assets []models.Asset, connected []models.ConnectedAccount, connectedSum, totalAssets float64) []models.CategoryBreakdown {
	amounts := make(map[string]*models.CategoryBreakdown)
	for _, a := range assets {
		entry, ok := amounts[a.Category]
		if !ok {
			entry = &models.CategoryBreakdown{Category: a.Category}
			amounts[a.Category] = entry
		}
		entry.Amount += a.CurrentValue
		entry.ItemCount++
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(amounts)+1)
	for _, entry := range amounts {
		entry.PercentageOfTotal = safeRatio(entry.Amount, totalAssets) * 100
		breakdown = append(breakdown, *entry)
	}
	if len(connected) > 0 {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category:          models.AssetCategoryCash,
			Amount:            connectedSum,
			PercentageOfTotal: safeRatio(connectedSum, totalAssets) * 100,
			ItemCount:         len(connected),
			IsConnected:       true,
		})
	}
	sortBreakdown(breakdown)
	return breakdown
}

// liabilitiesBreakdown groups manual liabilities by category. Connected
// debt is out of scope, so IsConnected is always false here.
func liabilitiesBreakdown(liabilities []models.Liability, totalLiabilities float64) []models.CategoryBreakdown {
	amounts := make(map[string]*models.CategoryBreakdown)
	for _, l := range liabilities {
		entry, ok := amounts[l.Category]
		if !ok {
			entry = &models.CategoryBreakdown{Category: l.Category}
			amounts[l.Category] = entry
		}
		entry.Amount += l.CurrentBalance
		entry.ItemCount++
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(amounts))
	for _, entry := range amounts {
		entry.PercentageOfTotal = safeRatio(entry.Amount, totalLiabilities) * 100
		breakdown = append(breakdown, *entry)
	}
	sortBreakdown(breakdown)
	return breakdown
}

func sortBreakdown(breakdown []models.CategoryBreakdown) {
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
}
