package schema

import "time"

type AlertType string

const (
	AlertTypeSurge             AlertType = "surge_detected"
	AlertTypeCapacity          AlertType = "capacity_warning"
	AlertTypeResourceDepletion AlertType = "resource_depletion"
	AlertTypeRapidGrowth       AlertType = "rapid_growth"
	AlertTypeDemographicRisk   AlertType = "demographic_risk"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities for sorting, critical first. Unknown severities
// sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 99
}

// Alert is a value object describing one warning for one region. Alerts have
// no identity beyond their content and are recomputed on every evaluation.
type Alert struct {
	RegionID        string                 `json:"region_id" bson:"region_id"`
	RegionName      string                 `json:"region_name" bson:"region_name"`
	AlertType       AlertType              `json:"alert_type" bson:"alert_type"`
	Severity        Severity               `json:"severity" bson:"severity"`
	Title           string                 `json:"title" bson:"title"`
	Description     string                 `json:"description" bson:"description"`
	Metrics         map[string]interface{} `json:"metrics" bson:"metrics"`
	TriggeredAt     time.Time              `json:"triggered_at" bson:"triggered_at"`
	Recommendations []string               `json:"recommendations" bson:"recommendations"`
}

// AlertSummary aggregates an alert list. BySeverity always carries all four
// buckets; ByType only carries types that actually occurred.
type AlertSummary struct {
	TotalAlerts int               `json:"total_alerts"`
	BySeverity  map[Severity]int  `json:"by_severity"`
	ByType      map[AlertType]int `json:"by_type"`
	MostUrgent  *Alert            `json:"most_urgent"`
}

// ResourceStatus carries the current consumable levels used by depletion
// checks. OxygenSupplyDays is nil when no resource report is available.
type ResourceStatus struct {
	OxygenSupplyDays *float64 `json:"oxygen_supply_days" bson:"oxygen_supply_days"`
}
