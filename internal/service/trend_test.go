package service

import (
	"testing"
	"time"

	"github.com/finwell/finwell-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlySeries(values ...float64) []models.HistoricalPoint {
	points := make([]models.HistoricalPoint, len(values))
	for i, v := range values {
		points[i] = models.HistoricalPoint{
			Date:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			NetWorth: v,
		}
	}
	return points
}

func TestAnalyzeTrendInsufficientData(t *testing.T) {
	assert.Nil(t, AnalyzeTrend(nil))
	assert.Nil(t, AnalyzeTrend(monthlySeries()))
	assert.Nil(t, AnalyzeTrend(monthlySeries(100000)))
}

func TestAnalyzeTrendGrowthSeries(t *testing.T) {
	analysis := AnalyzeTrend(monthlySeries(100000, 115000, 108000, 130000))
	require.NotNil(t, analysis)

	assert.Equal(t, 30000.0, analysis.TotalGrowth)
	assert.Equal(t, 30.0, analysis.TotalGrowthPercentage)
	assert.Equal(t, models.TrendStronglyPositive, analysis.Trend)
	assert.Equal(t, 10000.0, analysis.AverageMonthlyGrowth)

	assert.Equal(t, 22000.0, analysis.BestMonth.Growth)
	assert.Equal(t, -7000.0, analysis.WorstMonth.Growth)
	assert.InDelta(t, 20.37037037037037, analysis.BestMonth.GrowthPercentage, 1e-9)
	assert.InDelta(t, -6.086956521739131, analysis.WorstMonth.GrowthPercentage, 1e-9)
}

func TestAnalyzeTrendSortsDefensively(t *testing.T) {
	ordered := monthlySeries(100000, 115000, 108000, 130000)
	shuffled := []models.HistoricalPoint{ordered[2], ordered[0], ordered[3], ordered[1]}

	assert.Equal(t, AnalyzeTrend(ordered), AnalyzeTrend(shuffled))
}

func TestAnalyzeTrendZeroDenominators(t *testing.T) {
	analysis := AnalyzeTrend(monthlySeries(0, 5000))
	require.NotNil(t, analysis)

	assert.Equal(t, 5000.0, analysis.TotalGrowth)
	assert.Equal(t, 0.0, analysis.TotalGrowthPercentage)
	assert.Equal(t, 0.0, analysis.BestMonth.GrowthPercentage)
}

func TestAnalyzeTrendZeroMeanRegistersHighConsistency(t *testing.T) {
	// Swings that cancel out leave the average at zero, which maps to
	// CoV 0 and a high consistency label.
	analysis := AnalyzeTrend(monthlySeries(100000, 120000, 100000))
	require.NotNil(t, analysis)

	assert.Equal(t, 0.0, analysis.AverageMonthlyGrowth)
	assert.Equal(t, models.ConsistencyHigh, analysis.Consistency)
}

func TestAnalyzeTrendConsistencyLabels(t *testing.T) {
	// Constant growth: stddev 0 against a nonzero mean.
	steady := AnalyzeTrend(monthlySeries(100000, 110000, 120000, 130000))
	require.NotNil(t, steady)
	assert.Equal(t, models.ConsistencyHigh, steady.Consistency)

	// Growths 10000 and 30000: mean 20000, stddev 10000, CoV 0.5.
	medium := AnalyzeTrend(monthlySeries(100000, 110000, 140000))
	require.NotNil(t, medium)
	assert.Equal(t, models.ConsistencyMedium, medium.Consistency)

	// Growths -40000 and 50000: mean 5000, stddev 45000, CoV 9.
	volatile := AnalyzeTrend(monthlySeries(100000, 60000, 110000))
	require.NotNil(t, volatile)
	assert.Equal(t, models.ConsistencyLow, volatile.Consistency)
}

func TestAnalyzeTrendTiesResolveToFirstOccurrence(t *testing.T) {
	analysis := AnalyzeTrend(monthlySeries(100000, 110000, 120000))
	require.NotNil(t, analysis)

	// Both changes grow by 10000; the earlier month wins both slots.
	assert.Equal(t, analysis.BestMonth, analysis.WorstMonth)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), analysis.BestMonth.Date)
}

func TestClassifyTrendBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{30, models.TrendStronglyPositive},
		{15, models.TrendStronglyPositive},
		{14.9, models.TrendPositive},
		{5, models.TrendPositive},
		{4.9, models.TrendNeutral},
		{0, models.TrendNeutral},
		{-5, models.TrendNeutral},
		{-5.1, models.TrendNegative},
		{-15, models.TrendNegative},
		{-15.1, models.TrendStronglyNegative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyTrend(tt.pct), "pct %v", tt.pct)
	}
}
