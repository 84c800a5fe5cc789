package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/schema"
)

func seriesFromCounts(start string, counts []int) []schema.TimeSeriesPoint {
	series := make([]schema.TimeSeriesPoint, 0, len(counts))
	for i, c := range counts {
		series = append(series, schema.TimeSeriesPoint{
			Date:      addDays(start, i),
			CaseCount: c,
		})
	}
	return series
}

func TestCalculateGrowthMetricsInsufficientData(t *testing.T) {
	metrics := CalculateGrowthMetrics(nil)
	assert.False(t, metrics.Success)
	assert.NotEmpty(t, metrics.Error)

	metrics = CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{5}))
	assert.False(t, metrics.Success)
}

func TestGrowthRate3Day(t *testing.T) {
	metrics := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{10, 10, 10, 20, 20, 20}))
	assert.True(t, metrics.Success)
	assert.Equal(t, 100.0, metrics.GrowthRate3Day)
	assert.Equal(t, schema.TrendRapidGrowth, metrics.Trend)
	assert.Equal(t, 20, metrics.CurrentCases)
	assert.Equal(t, 10, metrics.PreviousCases)
	assert.Equal(t, "2026-01-06", metrics.LatestDate)
}

func TestGrowthRateZeroPriorSum(t *testing.T) {
	// percentage is undefined against a zero base; pinned to 0 by policy
	metrics := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{0, 0, 0, 5, 5, 5}))
	assert.True(t, metrics.Success)
	assert.Equal(t, 0.0, metrics.GrowthRate3Day)
	assert.Equal(t, schema.TrendStable, metrics.Trend)
}

func TestDoublingTimeWeeklyDoubling(t *testing.T) {
	counts := make([]int, 14)
	for i := range counts {
		counts[i] = int(math.Round(100 * math.Pow(2, float64(i)/7)))
	}

	metrics := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", counts))
	assert.True(t, metrics.Success)
	if assert.NotNil(t, metrics.DoublingTimeDays) {
		assert.InDelta(t, 7, *metrics.DoublingTimeDays, 0.3)
	}
}

func TestDoublingTimeNilWhenNotGrowing(t *testing.T) {
	flat := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{50, 50, 50, 50}))
	assert.Nil(t, flat.DoublingTimeDays)

	declining := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{80, 60, 40, 20}))
	assert.Nil(t, declining.DoublingTimeDays)

	fromZero := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{0, 10, 20, 30}))
	assert.Nil(t, fromZero.DoublingTimeDays)
}

func TestDailyVelocity(t *testing.T) {
	metrics := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", []int{100, 110, 120, 130, 140, 150, 160, 170, 180, 190}))
	assert.True(t, metrics.Success)
	assert.Equal(t, 10.0, metrics.DailyVelocity)
}

func TestTrendClassification(t *testing.T) {
	cases := []struct {
		recent   []int
		expected string
	}{
		{[]int{134, 133, 133}, schema.TrendRapidGrowth}, // +33%
		{[]int{110, 110, 110}, schema.TrendGrowing},     // +10%
		{[]int{103, 103, 103}, schema.TrendStable},      // +3%
		{[]int{80, 80, 80}, schema.TrendDeclining},      // -20%
	}

	for _, c := range cases {
		counts := append([]int{100, 100, 100}, c.recent...)
		metrics := CalculateGrowthMetrics(seriesFromCounts("2026-01-01", counts))
		assert.True(t, metrics.Success)
		assert.Equal(t, c.expected, metrics.Trend, "counts %v", counts)
	}
}

func TestUnsortedSeriesSortedBeforeAnalysis(t *testing.T) {
	sorted := seriesFromCounts("2026-01-01", []int{10, 10, 10, 20, 20, 20})
	shuffled := []schema.TimeSeriesPoint{sorted[3], sorted[0], sorted[5], sorted[2], sorted[4], sorted[1]}

	a := CalculateGrowthMetrics(sorted)
	b := CalculateGrowthMetrics(shuffled)
	assert.Equal(t, a, b)
}

func TestDetectSurgeHigh(t *testing.T) {
	// 75% growth: above the 50% threshold but not critical
	detection := DetectSurge(seriesFromCounts("2026-01-01", []int{100, 100, 100, 175, 175, 175}), 50)
	assert.True(t, detection.Success)
	assert.True(t, detection.IsSurge)
	assert.Equal(t, schema.SeverityHigh, detection.Severity)
	assert.Equal(t, "Cases increased by 75.0% in 3 days", detection.AlertMessage)
}

func TestDetectSurgeCritical(t *testing.T) {
	detection := DetectSurge(seriesFromCounts("2026-01-01", []int{100, 100, 100, 250, 250, 250}), 50)
	assert.True(t, detection.IsSurge)
	assert.Equal(t, schema.SeverityCritical, detection.Severity)
}

func TestDetectSurgeBelowThreshold(t *testing.T) {
	detection := DetectSurge(seriesFromCounts("2026-01-01", []int{100, 100, 100, 130, 130, 130}), 50)
	assert.True(t, detection.Success)
	assert.False(t, detection.IsSurge)
	assert.Equal(t, schema.SeverityMedium, detection.Severity)
	assert.Empty(t, detection.AlertMessage)
}

func TestDetectSurgeInsufficientData(t *testing.T) {
	detection := DetectSurge(seriesFromCounts("2026-01-01", []int{10}), 50)
	assert.False(t, detection.Success)
	assert.NotEmpty(t, detection.Error)
}
