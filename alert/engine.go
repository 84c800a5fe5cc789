package alert

import (
	"fmt"
	"sort"
	"time"

	"github.com/pulmoguard/surveillance-api/forecast"
	"github.com/pulmoguard/surveillance-api/schema"
)

// Thresholds configures when the engine fires. Every field can be overridden
// independently at construction; a zero field keeps its default.
type Thresholds struct {
	// SurgeGrowthRate and RapidGrowthRate are 3-day growth percentages.
	SurgeGrowthRate float64
	RapidGrowthRate float64

	// Doubling times in days.
	DoublingTimeCritical float64
	DoublingTimeWarning  float64

	// ICU utilization percentages.
	ICUUtilizationCritical float64
	ICUUtilizationWarning  float64

	// Oxygen supply remaining, in days.
	OxygenDaysCritical float64
	OxygenDaysWarning  float64
}

// DefaultThresholds returns the stock alerting configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SurgeGrowthRate:        50.0,
		RapidGrowthRate:        20.0,
		DoublingTimeCritical:   3.0,
		DoublingTimeWarning:    7.0,
		ICUUtilizationCritical: 90.0,
		ICUUtilizationWarning:  80.0,
		OxygenDaysCritical:     3,
		OxygenDaysWarning:      7,
	}
}

// Engine generates alerts from forecast and growth signals. It is a
// stateless transform: the only configuration is the threshold set, and
// every generator is a pure function of its inputs. Upstream failures yield
// empty alert lists, never errors.
type Engine struct {
	thresholds Thresholds
}

// NewEngine builds an engine. A nil thresholds argument uses the defaults;
// zero fields of a supplied struct are backfilled with defaults so callers
// can override a single threshold.
func NewEngine(thresholds *Thresholds) *Engine {
	t := DefaultThresholds()
	if thresholds != nil {
		defaults := t
		t = *thresholds
		if t.SurgeGrowthRate == 0 {
			t.SurgeGrowthRate = defaults.SurgeGrowthRate
		}
		if t.RapidGrowthRate == 0 {
			t.RapidGrowthRate = defaults.RapidGrowthRate
		}
		if t.DoublingTimeCritical == 0 {
			t.DoublingTimeCritical = defaults.DoublingTimeCritical
		}
		if t.DoublingTimeWarning == 0 {
			t.DoublingTimeWarning = defaults.DoublingTimeWarning
		}
		if t.ICUUtilizationCritical == 0 {
			t.ICUUtilizationCritical = defaults.ICUUtilizationCritical
		}
		if t.ICUUtilizationWarning == 0 {
			t.ICUUtilizationWarning = defaults.ICUUtilizationWarning
		}
		if t.OxygenDaysCritical == 0 {
			t.OxygenDaysCritical = defaults.OxygenDaysCritical
		}
		if t.OxygenDaysWarning == 0 {
			t.OxygenDaysWarning = defaults.OxygenDaysWarning
		}
	}
	return &Engine{thresholds: t}
}

// GenerateGrowthAlerts evaluates a historical series for surge, rapid growth
// and critical doubling time. Surge and rapid growth are mutually exclusive;
// the doubling-time check fires independently, so one call can yield two
// alerts.
func (e *Engine) GenerateGrowthAlerts(regionName, regionID string, series []schema.TimeSeriesPoint) []schema.Alert {
	alerts := []schema.Alert{}

	metrics := forecast.CalculateGrowthMetrics(series)
	if !metrics.Success {
		return alerts
	}

	growthRate := metrics.GrowthRate3Day

	if growthRate >= e.thresholds.SurgeGrowthRate {
		severity := schema.SeverityHigh
		if growthRate > 100 {
			severity = schema.SeverityCritical
		}
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeSurge,
			Severity:    severity,
			Title:       fmt.Sprintf("Case Surge Detected: %s", regionName),
			Description: fmt.Sprintf("Cases increased by %.1f%% in the last 3 days. Immediate attention required.", growthRate),
			Metrics: map[string]interface{}{
				"growth_rate":   growthRate,
				"current_cases": metrics.CurrentCases,
				"trend":         metrics.Trend,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				"Implement enhanced public health measures",
				"Increase testing and contact tracing capacity",
				"Prepare hospitals for surge in admissions",
			},
		})
	} else if growthRate >= e.thresholds.RapidGrowthRate {
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeRapidGrowth,
			Severity:    schema.SeverityMedium,
			Title:       fmt.Sprintf("Rapid Growth: %s", regionName),
			Description: fmt.Sprintf("Cases increasing at %.1f%% over 3 days. Monitor closely.", growthRate),
			Metrics: map[string]interface{}{
				"growth_rate":   growthRate,
				"current_cases": metrics.CurrentCases,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				"Increase surveillance in affected areas",
				"Review hospital preparedness plans",
			},
		})
	}

	if metrics.DoublingTimeDays != nil && *metrics.DoublingTimeDays <= e.thresholds.DoublingTimeCritical {
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeRapidGrowth,
			Severity:    schema.SeverityCritical,
			Title:       fmt.Sprintf("Critical Doubling Time: %s", regionName),
			Description: fmt.Sprintf("Cases doubling every %.1f days. Exponential growth detected.", *metrics.DoublingTimeDays),
			Metrics: map[string]interface{}{
				"doubling_time":  *metrics.DoublingTimeDays,
				"daily_velocity": metrics.DailyVelocity,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				"Consider lockdown or movement restrictions",
				"Activate emergency response protocols",
				"Coordinate with neighboring regions",
			},
		})
	}

	return alerts
}

// GenerateCapacityAlerts evaluates a resource forecast against current
// capacity. The ICU checks are mutually exclusive; the ventilator-shortage
// check fires independently of them.
func (e *Engine) GenerateCapacityAlerts(regionName, regionID string, resourceForecast schema.ResourceForecast, capacity schema.CapacitySnapshot) []schema.Alert {
	alerts := []schema.Alert{}

	if !resourceForecast.Success || resourceForecast.Summary == nil {
		return alerts
	}
	summary := resourceForecast.Summary

	if summary.MaxICUUtilization >= e.thresholds.ICUUtilizationCritical {
		gap := summary.PeakICUBedsNeeded - capacity.ICUBeds
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeCapacity,
			Severity:    schema.SeverityCritical,
			Title:       fmt.Sprintf("ICU Capacity Crisis: %s", regionName),
			Description: fmt.Sprintf("ICU utilization will reach %.1f%% by %s. Shortage of %d beds predicted.", summary.MaxICUUtilization, summary.PeakDate, gap),
			Metrics: map[string]interface{}{
				"max_utilization":  summary.MaxICUUtilization,
				"current_icu_beds": capacity.ICUBeds,
				"peak_icu_needed":  summary.PeakICUBedsNeeded,
				"gap":              gap,
				"peak_date":        summary.PeakDate,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				fmt.Sprintf("URGENT: Procure %d additional ICU beds before %s", gap, summary.PeakDate),
				"Convert general wards to ICU capacity",
				"Coordinate patient transfers to neighboring facilities",
				"Activate field hospital protocols if available",
			},
		})
	} else if summary.MaxICUUtilization >= e.thresholds.ICUUtilizationWarning {
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeCapacity,
			Severity:    schema.SeverityHigh,
			Title:       fmt.Sprintf("ICU Capacity Warning: %s", regionName),
			Description: fmt.Sprintf("ICU utilization approaching %.1f%% by %s. Prepare surge capacity.", summary.MaxICUUtilization, summary.PeakDate),
			Metrics: map[string]interface{}{
				"max_utilization": summary.MaxICUUtilization,
				"peak_date":       summary.PeakDate,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				"Activate surge capacity plans",
				"Defer non-urgent procedures to free capacity",
				"Review staffing levels and prepare for overtime",
			},
		})
	}

	if summary.PeakVentilatorsNeeded > capacity.VentilatorsAvailable {
		gap := summary.PeakVentilatorsNeeded - capacity.VentilatorsAvailable
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeResourceDepletion,
			Severity:    schema.SeverityHigh,
			Title:       fmt.Sprintf("Ventilator Shortage Predicted: %s", regionName),
			Description: fmt.Sprintf("Need %d ventilators by %s, but only %d available. Gap: %d", summary.PeakVentilatorsNeeded, summary.PeakDate, capacity.VentilatorsAvailable, gap),
			Metrics: map[string]interface{}{
				"peak_ventilators_needed": summary.PeakVentilatorsNeeded,
				"available":               capacity.VentilatorsAvailable,
				"gap":                     gap,
				"peak_date":               summary.PeakDate,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				fmt.Sprintf("Procure %d additional ventilators immediately", gap),
				"Coordinate ventilator sharing with nearby hospitals",
				"Train staff on ventilator operation and maintenance",
			},
		})
	}

	return alerts
}

// GenerateResourceDepletionAlerts evaluates the remaining oxygen supply. The
// critical and warning bands are mutually exclusive.
func (e *Engine) GenerateResourceDepletionAlerts(regionName, regionID string, status schema.ResourceStatus) []schema.Alert {
	alerts := []schema.Alert{}

	if status.OxygenSupplyDays == nil {
		return alerts
	}
	oxygenDays := *status.OxygenSupplyDays

	if oxygenDays <= e.thresholds.OxygenDaysCritical {
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeResourceDepletion,
			Severity:    schema.SeverityCritical,
			Title:       fmt.Sprintf("Oxygen Crisis: %s", regionName),
			Description: fmt.Sprintf("Oxygen supply will deplete in %.0f days at current consumption rate.", oxygenDays),
			Metrics: map[string]interface{}{
				"oxygen_days_remaining": oxygenDays,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				"Emergency oxygen procurement required",
				"Activate oxygen rationing protocols",
				"Coordinate emergency oxygen transfers from other regions",
			},
		})
	} else if oxygenDays <= e.thresholds.OxygenDaysWarning {
		alerts = append(alerts, schema.Alert{
			RegionID:    regionID,
			RegionName:  regionName,
			AlertType:   schema.AlertTypeResourceDepletion,
			Severity:    schema.SeverityMedium,
			Title:       fmt.Sprintf("Oxygen Supply Warning: %s", regionName),
			Description: fmt.Sprintf("Oxygen supply at %.0f days remaining. Replenishment needed.", oxygenDays),
			Metrics: map[string]interface{}{
				"oxygen_days_remaining": oxygenDays,
			},
			TriggeredAt: time.Now().UTC(),
			Recommendations: []string{
				"Schedule oxygen delivery within 48 hours",
				"Monitor oxygen consumption closely",
			},
		})
	}

	return alerts
}

// GenerateAllAlerts runs every generator and returns the combined list
// ordered by severity, critical first. The sort is stable, so generator
// order is preserved within a severity.
func (e *Engine) GenerateAllAlerts(regionName, regionID string, series []schema.TimeSeriesPoint, resourceForecast schema.ResourceForecast, capacity schema.CapacitySnapshot, status schema.ResourceStatus) []schema.Alert {
	alerts := []schema.Alert{}
	alerts = append(alerts, e.GenerateGrowthAlerts(regionName, regionID, series)...)
	alerts = append(alerts, e.GenerateCapacityAlerts(regionName, regionID, resourceForecast, capacity)...)
	alerts = append(alerts, e.GenerateResourceDepletionAlerts(regionName, regionID, status)...)

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
	return alerts
}

// GetAlertSummary counts an already-sorted alert list by severity and type.
// All four severity buckets are always present; MostUrgent is nil for an
// empty list.
func (e *Engine) GetAlertSummary(alerts []schema.Alert) schema.AlertSummary {
	summary := schema.AlertSummary{
		TotalAlerts: len(alerts),
		BySeverity: map[schema.Severity]int{
			schema.SeverityCritical: 0,
			schema.SeverityHigh:     0,
			schema.SeverityMedium:   0,
			schema.SeverityLow:      0,
		},
		ByType: map[schema.AlertType]int{},
	}

	if len(alerts) > 0 {
		summary.MostUrgent = &alerts[0]
	}

	for _, a := range alerts {
		summary.BySeverity[a.Severity]++
		summary.ByType[a.AlertType]++
	}

	return summary
}
