package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

func seriesFromCounts(start string, counts []int) []schema.TimeSeriesPoint {
	base, err := utils.ParseDay(start)
	if err != nil {
		panic(err)
	}
	series := make([]schema.TimeSeriesPoint, 0, len(counts))
	for i, c := range counts {
		series = append(series, schema.TimeSeriesPoint{
			Date:      utils.FormatDay(base.AddDate(0, 0, i)),
			CaseCount: c,
		})
	}
	return series
}

func resourceForecastWithSummary(summary schema.ResourceSummary) schema.ResourceForecast {
	return schema.ResourceForecast{
		Success: true,
		Summary: &summary,
	}
}

func TestGenerateGrowthAlertsSurgeAndDoubling(t *testing.T) {
	e := NewEngine(nil)

	// doubling daily: both the surge check and the doubling-time check fire
	alerts := e.GenerateGrowthAlerts("Testland", "TL", seriesFromCounts("2026-01-01", []int{10, 20, 40, 80, 160, 320, 640}))
	assert.Len(t, alerts, 2)

	assert.Equal(t, schema.AlertTypeSurge, alerts[0].AlertType)
	assert.Equal(t, schema.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "Case Surge Detected: Testland", alerts[0].Title)
	assert.Equal(t, "TL", alerts[0].RegionID)
	assert.Len(t, alerts[0].Recommendations, 3)

	assert.Equal(t, schema.AlertTypeRapidGrowth, alerts[1].AlertType)
	assert.Equal(t, schema.SeverityCritical, alerts[1].Severity)
	assert.Equal(t, 1.0, alerts[1].Metrics["doubling_time"])
}

func TestGenerateGrowthAlertsRapidGrowthOnly(t *testing.T) {
	e := NewEngine(nil)

	// 30% over 3 days: rapid growth, no surge, doubling time well above 3 days
	alerts := e.GenerateGrowthAlerts("Testland", "TL", seriesFromCounts("2026-01-01", []int{100, 100, 100, 130, 130, 130}))
	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.AlertTypeRapidGrowth, alerts[0].AlertType)
	assert.Equal(t, schema.SeverityMedium, alerts[0].Severity)
	assert.Len(t, alerts[0].Recommendations, 2)
}

func TestGenerateGrowthAlertsSurgeHighBand(t *testing.T) {
	e := NewEngine(nil)

	// 75% growth: surging but below the 100% critical cut
	alerts := e.GenerateGrowthAlerts("Testland", "TL", seriesFromCounts("2026-01-01", []int{100, 100, 100, 175, 175, 175}))
	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.AlertTypeSurge, alerts[0].AlertType)
	assert.Equal(t, schema.SeverityHigh, alerts[0].Severity)
}

func TestGenerateGrowthAlertsInsufficientData(t *testing.T) {
	e := NewEngine(nil)
	assert.Empty(t, e.GenerateGrowthAlerts("Testland", "TL", seriesFromCounts("2026-01-01", []int{10})))
}

func TestGenerateGrowthAlertsThresholdOverride(t *testing.T) {
	e := NewEngine(&Thresholds{SurgeGrowthRate: 25})

	alerts := e.GenerateGrowthAlerts("Testland", "TL", seriesFromCounts("2026-01-01", []int{100, 100, 100, 130, 130, 130}))
	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.AlertTypeSurge, alerts[0].AlertType)
	assert.Equal(t, schema.SeverityHigh, alerts[0].Severity)
}

func TestGenerateCapacityAlertsCritical(t *testing.T) {
	e := NewEngine(nil)

	alerts := e.GenerateCapacityAlerts("Testland", "TL",
		resourceForecastWithSummary(schema.ResourceSummary{
			MaxICUUtilization: 120,
			PeakICUBedsNeeded: 240,
			PeakDate:          "2026-02-07",
		}),
		schema.CapacitySnapshot{ICUBeds: 200},
	)

	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.AlertTypeCapacity, alerts[0].AlertType)
	assert.Equal(t, schema.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, 40, alerts[0].Metrics["gap"])
}

func TestGenerateCapacityAlertsVentilatorIndependent(t *testing.T) {
	e := NewEngine(nil)

	alerts := e.GenerateCapacityAlerts("Testland", "TL",
		resourceForecastWithSummary(schema.ResourceSummary{
			MaxICUUtilization:     120,
			PeakICUBedsNeeded:     240,
			PeakVentilatorsNeeded: 50,
			PeakDate:              "2026-02-07",
		}),
		schema.CapacitySnapshot{ICUBeds: 200, VentilatorsAvailable: 30},
	)

	assert.Len(t, alerts, 2)
	assert.Equal(t, schema.AlertTypeCapacity, alerts[0].AlertType)
	assert.Equal(t, schema.AlertTypeResourceDepletion, alerts[1].AlertType)
	assert.Equal(t, schema.SeverityHigh, alerts[1].Severity)
	assert.Equal(t, 20, alerts[1].Metrics["gap"])
}

func TestGenerateCapacityAlertsWarningBand(t *testing.T) {
	e := NewEngine(nil)

	alerts := e.GenerateCapacityAlerts("Testland", "TL",
		resourceForecastWithSummary(schema.ResourceSummary{
			MaxICUUtilization: 85,
			PeakICUBedsNeeded: 85,
			PeakDate:          "2026-02-07",
		}),
		schema.CapacitySnapshot{ICUBeds: 100},
	)

	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, "ICU Capacity Warning: Testland", alerts[0].Title)
}

func TestGenerateCapacityAlertsUpstreamFailure(t *testing.T) {
	e := NewEngine(nil)
	assert.Empty(t, e.GenerateCapacityAlerts("Testland", "TL", schema.ResourceForecast{Success: false}, schema.CapacitySnapshot{}))
}

func TestGenerateResourceDepletionAlerts(t *testing.T) {
	e := NewEngine(nil)

	assert.Empty(t, e.GenerateResourceDepletionAlerts("Testland", "TL", schema.ResourceStatus{}))

	two := 2.0
	alerts := e.GenerateResourceDepletionAlerts("Testland", "TL", schema.ResourceStatus{OxygenSupplyDays: &two})
	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.SeverityCritical, alerts[0].Severity)

	five := 5.0
	alerts = e.GenerateResourceDepletionAlerts("Testland", "TL", schema.ResourceStatus{OxygenSupplyDays: &five})
	assert.Len(t, alerts, 1)
	assert.Equal(t, schema.SeverityMedium, alerts[0].Severity)

	ten := 10.0
	assert.Empty(t, e.GenerateResourceDepletionAlerts("Testland", "TL", schema.ResourceStatus{OxygenSupplyDays: &ten}))
}

func TestGenerateAllAlertsSortedBySeverity(t *testing.T) {
	e := NewEngine(nil)

	// medium growth alert plus critical capacity alert: critical must come first
	five := 5.0
	alerts := e.GenerateAllAlerts("Testland", "TL",
		seriesFromCounts("2026-01-01", []int{100, 100, 100, 130, 130, 130}),
		resourceForecastWithSummary(schema.ResourceSummary{
			MaxICUUtilization: 120,
			PeakICUBedsNeeded: 240,
			PeakDate:          "2026-02-07",
		}),
		schema.CapacitySnapshot{ICUBeds: 200},
		schema.ResourceStatus{OxygenSupplyDays: &five},
	)

	assert.Len(t, alerts, 3)
	assert.Equal(t, schema.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, schema.AlertTypeCapacity, alerts[0].AlertType)
	assert.Equal(t, schema.SeverityMedium, alerts[1].Severity)
	assert.Equal(t, schema.AlertTypeRapidGrowth, alerts[1].AlertType)
	assert.Equal(t, schema.SeverityMedium, alerts[2].Severity)
	assert.Equal(t, schema.AlertTypeResourceDepletion, alerts[2].AlertType)
}

func TestGetAlertSummaryEmpty(t *testing.T) {
	e := NewEngine(nil)

	summary := e.GetAlertSummary(nil)
	assert.Equal(t, 0, summary.TotalAlerts)
	assert.Len(t, summary.BySeverity, 4)
	for _, count := range summary.BySeverity {
		assert.Equal(t, 0, count)
	}
	assert.Empty(t, summary.ByType)
	assert.Nil(t, summary.MostUrgent)
}

func TestGetAlertSummaryCounts(t *testing.T) {
	e := NewEngine(nil)

	alerts := []schema.Alert{
		{AlertType: schema.AlertTypeCapacity, Severity: schema.SeverityCritical, Title: "first"},
		{AlertType: schema.AlertTypeSurge, Severity: schema.SeverityHigh},
		{AlertType: schema.AlertTypeCapacity, Severity: schema.SeverityHigh},
	}

	summary := e.GetAlertSummary(alerts)
	assert.Equal(t, 3, summary.TotalAlerts)
	assert.Equal(t, 1, summary.BySeverity[schema.SeverityCritical])
	assert.Equal(t, 2, summary.BySeverity[schema.SeverityHigh])
	assert.Equal(t, 0, summary.BySeverity[schema.SeverityLow])
	assert.Equal(t, 2, summary.ByType[schema.AlertTypeCapacity])
	assert.Equal(t, 1, summary.ByType[schema.AlertTypeSurge])
	if assert.NotNil(t, summary.MostUrgent) {
		assert.Equal(t, "first", summary.MostUrgent.Title)
	}
}
