package forecast

import (
	"fmt"
	"time"

	"github.com/pulmoguard/surveillance-api/schema"
)

const reportTimeFormat = "2006-01-02 15:04:05"

// GenerateForecastReport runs the whole pipeline for one region: case
// forecast, resource demand, growth analysis, surge detection and
// recommendations. Every region is independent; the caller may fan this out
// however it likes.
func GenerateForecastReport(regionName string, series []schema.TimeSeriesPoint, capacity schema.CapacitySnapshot, forecastDays int) schema.ForecastReport {
	model := NewCaseForecastModel()
	if !model.Fit(series) {
		return schema.ForecastReport{
			Error: "failed to train forecast model",
		}
	}

	caseForecast := model.Forecast(forecastDays)
	if !caseForecast.Success {
		return schema.ForecastReport{
			Error: caseForecast.Error,
		}
	}

	predictor := NewResourceDemandPredictor(nil)
	resourceForecast := predictor.PredictResourceNeeds(caseForecast.Predictions, capacity)

	growth := CalculateGrowthMetrics(series)
	surge := DetectSurge(series, DefaultSurgeThreshold)

	return schema.ForecastReport{
		Success:             true,
		RegionName:          regionName,
		ForecastGeneratedAt: time.Now().UTC().Format(reportTimeFormat),
		CaseForecast:        caseForecast.Predictions,
		ResourceForecast:    &resourceForecast,
		GrowthAnalysis:      &growth,
		SurgeDetection:      &surge,
		Recommendations:     GenerateRecommendations(surge, resourceForecast, growth, capacity),
	}
}

// GenerateRecommendations turns the numeric signals of a report into action
// items for policymakers. The fallback is a single all-clear line.
func GenerateRecommendations(surge schema.SurgeDetection, resourceForecast schema.ResourceForecast, growth schema.GrowthMetrics, capacity schema.CapacitySnapshot) []string {
	recommendations := []string{}

	if surge.Success && surge.IsSurge {
		switch surge.Severity {
		case schema.SeverityCritical:
			recommendations = append(recommendations, "CRITICAL: Implement immediate lockdown measures and expand testing")
		case schema.SeverityHigh:
			recommendations = append(recommendations, "HIGH ALERT: Increase hospital preparedness and public health messaging")
		}
	}

	if resourceForecast.Success && resourceForecast.Summary != nil {
		summary := resourceForecast.Summary

		if summary.MaxICUUtilization > 100 {
			gap := summary.PeakICUBedsNeeded - capacity.ICUBeds
			recommendations = append(recommendations,
				fmt.Sprintf("URGENT: Procure %d additional ICU beds before %s", gap, summary.PeakDate))
		} else if summary.MaxICUUtilization > 80 {
			recommendations = append(recommendations, "Prepare surge capacity - ICU utilization will exceed 80%")
		}

		if summary.PeakVentilatorsNeeded > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Ensure availability of %d ventilators by %s", summary.PeakVentilatorsNeeded, summary.PeakDate))
		}
	}

	if growth.DoublingTimeDays != nil && *growth.DoublingTimeDays < 5 {
		recommendations = append(recommendations,
			fmt.Sprintf("Cases doubling every %.1f days - Exponential growth in progress", *growth.DoublingTimeDays))
	}

	if growth.Trend == schema.TrendRapidGrowth {
		recommendations = append(recommendations,
			"Prioritize vulnerable populations (60+) for vaccination and monitoring",
			"Scale up testing capacity to match case growth trajectory")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Situation stable - Continue monitoring")
	}
	return recommendations
}
