package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/schema"
)

func TestGenerateForecastReportEndToEnd(t *testing.T) {
	// 30 days growing at roughly 20% per week
	counts := make([]int, 30)
	for i := range counts {
		counts[i] = int(math.Round(100 * math.Pow(1.2, float64(i)/7)))
	}
	series := seriesFromCounts("2026-01-01", counts)
	capacity := schema.CapacitySnapshot{TotalBeds: 500, ICUBeds: 50, VentilatorsAvailable: 20}

	report := GenerateForecastReport("Testland", series, capacity, 7)
	assert.True(t, report.Success)
	assert.Equal(t, "Testland", report.RegionName)
	assert.NotEmpty(t, report.ForecastGeneratedAt)
	assert.Len(t, report.CaseForecast, 7)
	assert.NotEmpty(t, report.Recommendations)

	assert.Equal(t, "2026-01-31", report.CaseForecast[0].Date)
	for i := 1; i < len(report.CaseForecast); i++ {
		assert.True(t, report.CaseForecast[i-1].Date < report.CaseForecast[i].Date)
	}

	if assert.NotNil(t, report.GrowthAnalysis) {
		assert.True(t, report.GrowthAnalysis.Success)
		assert.Equal(t, schema.TrendGrowing, report.GrowthAnalysis.Trend)
	}
	if assert.NotNil(t, report.ResourceForecast) {
		assert.True(t, report.ResourceForecast.Success)
		assert.Len(t, report.ResourceForecast.Timeline, 7)
	}
	if assert.NotNil(t, report.SurgeDetection) {
		assert.True(t, report.SurgeDetection.Success)
		assert.False(t, report.SurgeDetection.IsSurge)
	}
}

func TestGenerateForecastReportInsufficientData(t *testing.T) {
	report := GenerateForecastReport("Testland", seriesFromCounts("2026-01-01", []int{5, 6}), schema.CapacitySnapshot{}, 7)
	assert.False(t, report.Success)
	assert.Equal(t, "failed to train forecast model", report.Error)
	assert.Empty(t, report.CaseForecast)
}

func TestGenerateRecommendationsStable(t *testing.T) {
	recs := GenerateRecommendations(
		schema.SurgeDetection{Success: true},
		schema.ResourceForecast{Success: true, Summary: &schema.ResourceSummary{MaxICUUtilization: 40}},
		schema.GrowthMetrics{Success: true, Trend: schema.TrendStable},
		schema.CapacitySnapshot{ICUBeds: 100},
	)
	assert.Equal(t, []string{"Situation stable - Continue monitoring"}, recs)
}

func TestGenerateRecommendationsOverloadedICU(t *testing.T) {
	recs := GenerateRecommendations(
		schema.SurgeDetection{Success: true, IsSurge: true, Severity: schema.SeverityCritical},
		schema.ResourceForecast{Success: true, Summary: &schema.ResourceSummary{
			MaxICUUtilization:     150,
			PeakICUBedsNeeded:     150,
			PeakVentilatorsNeeded: 40,
			PeakDate:              "2026-02-07",
		}},
		schema.GrowthMetrics{Success: true, Trend: schema.TrendRapidGrowth},
		schema.CapacitySnapshot{ICUBeds: 100},
	)

	assert.Contains(t, recs, "CRITICAL: Implement immediate lockdown measures and expand testing")
	assert.Contains(t, recs, "URGENT: Procure 50 additional ICU beds before 2026-02-07")
	assert.Contains(t, recs, "Ensure availability of 40 ventilators by 2026-02-07")
	assert.Contains(t, recs, "Scale up testing capacity to match case growth trajectory")
}
