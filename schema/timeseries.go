package schema

// TimeSeriesPoint is one calendar day of aggregate case data for a region or
// hospital. Date is an ISO-8601 calendar date and CaseCount is the total for
// that day, not a running total. The derived counts are carried through for
// display but not consulted by the forecasting math.
type TimeSeriesPoint struct {
	Date           string `json:"date" bson:"date"`
	CaseCount      int    `json:"case_count" bson:"case_count"`
	PneumoniaCount int    `json:"pneumonia_count,omitempty" bson:"pneumonia_count,omitempty"`
	SevereCount    int    `json:"severe_count,omitempty" bson:"severe_count,omitempty"`
	Deaths         int    `json:"deaths,omitempty" bson:"deaths,omitempty"`
	RegionID       string `json:"region_id,omitempty" bson:"region_id,omitempty"`
	RegionName     string `json:"region_name,omitempty" bson:"region_name,omitempty"`
}

// ForecastPoint is a single projected day of a case forecast. Bounds are
// clamped at zero and rounded for display. ConfidenceInterval is the
// half-width of the prediction band, rendered for display.
type ForecastPoint struct {
	Date               string `json:"date" bson:"date"`
	PredictedCases     int    `json:"predicted_cases" bson:"predicted_cases"`
	LowerBound         int    `json:"lower_bound" bson:"lower_bound"`
	UpperBound         int    `json:"upper_bound" bson:"upper_bound"`
	ConfidenceInterval string `json:"confidence_interval" bson:"confidence_interval"`
}

// ForecastResult is the outcome of a forecast call. A failed call carries an
// error message and an empty prediction list, never a panic.
type ForecastResult struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	Predictions []ForecastPoint `json:"predictions"`
	ModelType   string          `json:"model_type,omitempty"`
}

// CapacitySnapshot holds the current resource levels of a hospital or the
// aggregate of a region. Missing values default to zero.
type CapacitySnapshot struct {
	TotalBeds            int `json:"total_beds" bson:"total_beds"`
	ICUBeds              int `json:"icu_beds" bson:"icu_beds"`
	VentilatorsAvailable int `json:"ventilators_available" bson:"ventilators_available"`
}

// ResourceDay is one day of derived resource demand.
type ResourceDay struct {
	Date                   string  `json:"date" bson:"date"`
	PredictedCases         int     `json:"predicted_cases" bson:"predicted_cases"`
	SevereCases            int     `json:"severe_cases" bson:"severe_cases"`
	ICUBedsNeeded          int     `json:"icu_beds_needed" bson:"icu_beds_needed"`
	VentilatorsNeeded      int     `json:"ventilators_needed" bson:"ventilators_needed"`
	OxygenUnitsNeeded      int     `json:"oxygen_units_needed" bson:"oxygen_units_needed"`
	ICUBedGap              int     `json:"icu_bed_gap" bson:"icu_bed_gap"`
	ICUCapacityUtilization float64 `json:"icu_capacity_utilization" bson:"icu_capacity_utilization"`
}

// ResourceSummary aggregates a resource timeline. TotalICUGapDays is a
// day-weighted shortage measure, not a bed count.
type ResourceSummary struct {
	PeakDate              string  `json:"peak_date"`
	PeakCases             int     `json:"peak_cases"`
	PeakICUBedsNeeded     int     `json:"peak_icu_beds_needed"`
	PeakVentilatorsNeeded int     `json:"peak_ventilators_needed"`
	TotalICUGapDays       int     `json:"total_icu_gap_days"`
	MaxICUUtilization     float64 `json:"max_icu_utilization"`
}

// ResourceForecast is the outcome of a resource demand prediction.
type ResourceForecast struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	Timeline []ResourceDay    `json:"timeline,omitempty"`
	Summary  *ResourceSummary `json:"summary,omitempty"`
}

// Trend classifications derived from the 3-day growth rate.
const (
	TrendRapidGrowth = "rapid_growth"
	TrendGrowing     = "growing"
	TrendStable      = "stable"
	TrendDeclining   = "declining"
)

// GrowthMetrics describes the short-window growth behavior of a series.
// DoublingTimeDays is nil when the series is flat or shrinking over the
// lookback window. RegionID and RegionName are attached by callers that
// compute metrics for many regions at once.
type GrowthMetrics struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error,omitempty"`
	GrowthRate3Day   float64  `json:"growth_rate_3day"`
	DoublingTimeDays *float64 `json:"doubling_time_days"`
	DailyVelocity    float64  `json:"daily_velocity"`
	Trend            string   `json:"trend,omitempty"`
	CurrentCases     int      `json:"current_cases"`
	PreviousCases    int      `json:"previous_cases"`
	LatestDate       string   `json:"latest_date,omitempty"`
	RegionID         string   `json:"region_id,omitempty"`
	RegionName       string   `json:"region_name,omitempty"`
}

// SurgeDetection is the outcome of surge detection over a series.
// AlertMessage is only set while a surge is in progress.
type SurgeDetection struct {
	Success      bool           `json:"success"`
	Error        string         `json:"error,omitempty"`
	IsSurge      bool           `json:"is_surge"`
	Severity     Severity       `json:"severity,omitempty"`
	Metrics      *GrowthMetrics `json:"metrics,omitempty"`
	AlertMessage string         `json:"alert_message,omitempty"`
}

// ForecastReport is the full per-region report composed by the forecast
// pipeline. The field names and nesting are a stable contract with the
// dashboard; do not rename.
type ForecastReport struct {
	Success             bool              `json:"success"`
	Error               string            `json:"error,omitempty"`
	RegionName          string            `json:"region_name,omitempty"`
	ForecastGeneratedAt string            `json:"forecast_generated_at,omitempty"`
	CaseForecast        []ForecastPoint   `json:"case_forecast,omitempty"`
	ResourceForecast    *ResourceForecast `json:"resource_forecast,omitempty"`
	GrowthAnalysis      *GrowthMetrics    `json:"growth_analysis,omitempty"`
	SurgeDetection      *SurgeDetection   `json:"surge_detection,omitempty"`
	Recommendations     []string          `json:"recommendations,omitempty"`
}
