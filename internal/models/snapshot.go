package models

import "time"

// CategoryBreakdown is one category's share of total assets or liabilities.
type CategoryBreakdown struct {
	Category          string  `json:"category"`
	Amount            float64 `json:"amount"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
	ItemCount         int     `json:"item_count"`
	IsConnected       bool    `json:"is_connected"`
}

// NetWorthSnapshot is a single dated computation of total assets,
// liabilities and net worth. NetWorth always equals
// TotalAssets - TotalLiabilities. Persisted snapshots are immutable
// time-series rows, never updated in place.
type NetWorthSnapshot struct {
	TotalAssets             float64             `json:"total_assets"`
	TotalLiabilities        float64             `json:"total_liabilities"`
	NetWorth                float64             `json:"net_worth"`
	AssetsBreakdown         []CategoryBreakdown `json:"assets_breakdown"`
	LiabilitiesBreakdown    []CategoryBreakdown `json:"liabilities_breakdown"`
	MonthlyIncome           float64             `json:"monthly_income"`
	MonthlyExpenses         float64             `json:"monthly_expenses"`
	SavingsRate             float64             `json:"savings_rate"`
	MonthlyChange           float64             `json:"monthly_change"`
	MonthlyChangePercentage float64             `json:"monthly_change_percentage"`
	AsOfDate                time.Time           `json:"as_of_date"`
}

// HistoricalPoint is the slim view of a persisted snapshot consumed by
// the trend analyzer.
type HistoricalPoint struct {
	Date             time.Time `json:"date"`
	NetWorth         float64   `json:"net_worth"`
	TotalAssets      float64   `json:"total_assets"`
	TotalLiabilities float64   `json:"total_liabilities"`
}
