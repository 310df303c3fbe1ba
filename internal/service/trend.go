package service

import (
	"math"
	"sort"

	"github.com/finwell/finwell-server/internal/models"
)

// Coefficient-of-variation cutoffs for the consistency label.
const (
	covHighCutoff   = 0.5
	covMediumCutoff = 1.5
)

// AnalyzeTrend derives growth, volatility and classification metrics
// from a snapshot series. Pure: no I/O, deterministic for a given
// input. Returns nil when fewer than two points exist — insufficient
// data, not an error. The series is sorted by date defensively so an
// unsorted caller gets correct statistics rather than silently wrong
// ones.
func AnalyzeTrend(series []models.HistoricalPoint) *models.TrendAnalysis {
	if len(series) < 2 {
		return nil
	}

	sorted := make([]models.HistoricalPoint, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	first, last := sorted[0], sorted[len(sorted)-1]
	totalGrowth := last.NetWorth - first.NetWorth
	totalGrowthPct := safeRatio(totalGrowth, first.NetWorth) * 100

	changes := make([]models.MonthlyChange, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		growth := sorted[i].NetWorth - sorted[i-1].NetWorth
		changes = append(changes, models.MonthlyChange{
			Date:             sorted[i].Date,
			Growth:           growth,
			GrowthPercentage: safeRatio(growth, sorted[i-1].NetWorth) * 100,
		})
	}

	var sum float64
	best, worst := changes[0], changes[0]
	for _, c := range changes {
		sum += c.Growth
		if c.Growth > best.Growth {
			best = c
		}
		if c.Growth < worst.Growth {
			worst = c
		}
	}
	avgGrowth := sum / float64(len(changes))

	var variance float64
	for _, c := range changes {
		d := c.Growth - avgGrowth
		variance += d * d
	}
	variance /= float64(len(changes))
	stddev := math.Sqrt(variance)

	// A zero average yields CoV 0 and therefore a "high" label, even
	// when individual months swing around a near-zero mean. Kept for
	// compatibility with existing history consumers.
	cov := math.Abs(safeRatio(stddev, avgGrowth))

	return &models.TrendAnalysis{
		TotalGrowth:           totalGrowth,
		TotalGrowthPercentage: totalGrowthPct,
		AverageMonthlyGrowth:  avgGrowth,
		BestMonth:             best,
		WorstMonth:            worst,
		Consistency:           consistencyLabel(cov),
		Trend:                 classifyTrend(totalGrowthPct),
	}
}

func consistencyLabel(cov float64) string {
	switch {
	case cov < covHighCutoff:
		return models.ConsistencyHigh
	case cov < covMediumCutoff:
		return models.ConsistencyMedium
	default:
		return models.ConsistencyLow
	}
}

func classifyTrend(totalGrowthPct float64) string {
	switch {
	case totalGrowthPct >= 15:
		return models.TrendStronglyPositive
	case totalGrowthPct >= 5:
		return models.TrendPositive
	case totalGrowthPct >= -5:
		return models.TrendNeutral
	case totalGrowthPct >= -15:
		return models.TrendNegative
	default:
		return models.TrendStronglyNegative
	}
}
