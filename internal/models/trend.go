package models

import "time"

// Trend classification bands derived from total growth percentage.
const (
	TrendStronglyPositive = "strongly-positive"
	TrendPositive         = "positive"
	TrendNeutral          = "neutral"
	TrendNegative         = "negative"
	TrendStronglyNegative = "strongly-negative"
)

// Consistency labels derived from the coefficient of variation of
// month-over-month growth.
const (
	ConsistencyHigh   = "high"
	ConsistencyMedium = "medium"
	ConsistencyLow    = "low"
)

// MonthlyChange is the net worth movement between two consecutive
// historical points.
type MonthlyChange struct {
	Date             time.Time `json:"date"`
	Growth           float64   `json:"growth"`
	GrowthPercentage float64   `json:"growth_percentage"`
}

// TrendAnalysis summarizes growth, volatility and classification over a
// snapshot series.
type TrendAnalysis struct {
	TotalGrowth           float64       `json:"total_growth"`
	TotalGrowthPercentage float64       `json:"total_growth_percentage"`
	AverageMonthlyGrowth  float64       `json:"average_monthly_growth"`
	BestMonth             MonthlyChange `json:"best_month"`
	WorstMonth            MonthlyChange `json:"worst_month"`
	Consistency           string        `json:"consistency"`
	Trend                 string        `json:"trend"`
}
