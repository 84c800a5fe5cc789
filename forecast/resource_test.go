package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/schema"
)

func forecastFromCounts(start string, counts []int) []schema.ForecastPoint {
	points := make([]schema.ForecastPoint, 0, len(counts))
	for i, c := range counts {
		points = append(points, schema.ForecastPoint{
			Date:           addDays(start, i),
			PredictedCases: c,
		})
	}
	return points
}

func TestPredictResourceNeedsEmptyForecast(t *testing.T) {
	p := NewResourceDemandPredictor(nil)
	result := p.PredictResourceNeeds(nil, schema.CapacitySnapshot{ICUBeds: 100})
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.Summary)
}

func TestPredictResourceNeedsRisingWeek(t *testing.T) {
	p := NewResourceDemandPredictor(nil)
	counts := []int{500, 550, 600, 650, 700, 750, 800}
	capacity := schema.CapacitySnapshot{ICUBeds: 100}

	result := p.PredictResourceNeeds(forecastFromCounts("2026-02-01", counts), capacity)
	assert.True(t, result.Success)
	assert.Len(t, result.Timeline, 7)

	totalGap := 0
	for i, day := range result.Timeline {
		icu := int(float64(counts[i])*0.30 + 0.5)
		assert.Equal(t, icu, day.ICUBedsNeeded)
		assert.Equal(t, icu-100, day.ICUBedGap)
		assert.Equal(t, int(float64(counts[i])*0.20+0.5), day.SevereCases)
		assert.Equal(t, int(float64(counts[i])*0.10+0.5), day.VentilatorsNeeded)
		assert.Equal(t, counts[i]*2, day.OxygenUnitsNeeded)
		totalGap += icu - 100
	}

	summary := result.Summary
	assert.Equal(t, "2026-02-07", summary.PeakDate)
	assert.Equal(t, 800, summary.PeakCases)
	assert.Equal(t, 240, summary.PeakICUBedsNeeded)
	assert.Equal(t, 80, summary.PeakVentilatorsNeeded)
	assert.Equal(t, totalGap, summary.TotalICUGapDays)
	assert.Equal(t, 240.0, summary.MaxICUUtilization)
}

func TestPeakDayTieBreaksChronologically(t *testing.T) {
	p := NewResourceDemandPredictor(nil)
	result := p.PredictResourceNeeds(forecastFromCounts("2026-02-01", []int{10, 30, 20, 30}), schema.CapacitySnapshot{ICUBeds: 50})
	assert.True(t, result.Success)
	assert.Equal(t, "2026-02-02", result.Summary.PeakDate)
}

func TestPredictResourceNeedsCustomRatios(t *testing.T) {
	ratios := DefaultResourceRatios()
	ratios.ICUBedRatio = 0.5
	ratios.OxygenPerCase = 3

	p := NewResourceDemandPredictor(&ratios)
	result := p.PredictResourceNeeds(forecastFromCounts("2026-02-01", []int{100}), schema.CapacitySnapshot{ICUBeds: 10})
	assert.True(t, result.Success)
	assert.Equal(t, 50, result.Timeline[0].ICUBedsNeeded)
	assert.Equal(t, 300, result.Timeline[0].OxygenUnitsNeeded)
	assert.Equal(t, 40, result.Timeline[0].ICUBedGap)
}

func TestZeroICUCapacityGuard(t *testing.T) {
	p := NewResourceDemandPredictor(nil)
	result := p.PredictResourceNeeds(forecastFromCounts("2026-02-01", []int{10}), schema.CapacitySnapshot{})
	assert.True(t, result.Success)

	// a zero-bed region divides by one, not by zero
	assert.Equal(t, 300.0, result.Timeline[0].ICUCapacityUtilization)
	assert.Equal(t, 3, result.Timeline[0].ICUBedGap)
}

func TestGapFlooredAtZero(t *testing.T) {
	p := NewResourceDemandPredictor(nil)
	result := p.PredictResourceNeeds(forecastFromCounts("2026-02-01", []int{10}), schema.CapacitySnapshot{ICUBeds: 100})
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Timeline[0].ICUBedGap)
	assert.Equal(t, 0, result.Summary.TotalICUGapDays)
}
