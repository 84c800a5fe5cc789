package schema

// Mongo collections holding daily aggregates and generated alerts.
const (
	RegionalSummaryCollection = "regional_summary"
	CaseSummaryCollection     = "case_summary"
	ResourceCollection        = "resources"
	AlertCollection           = "alerts"
)

// Region types of a RegionalSummary.
const (
	RegionTypeCountry = "country"
	RegionTypeState   = "state"
	RegionTypeCity    = "city"
)

// RegionalSummary is one day of aggregate counts for a region.
type RegionalSummary struct {
	RegionID       string `json:"region_id" bson:"region_id"`
	RegionName     string `json:"region_name" bson:"region_name"`
	RegionType     string `json:"region_type" bson:"region_type"`
	Date           string `json:"date" bson:"date"`
	CaseCount      int    `json:"case_count" bson:"case_count"`
	NormalCount    int    `json:"normal_count" bson:"normal_count"`
	PneumoniaCount int    `json:"pneumonia_count" bson:"pneumonia_count"`
	SevereCount    int    `json:"severe_count" bson:"severe_count"`
	Deaths         int    `json:"deaths" bson:"deaths"`
}

// TimeSeriesPoint projects the summary onto the series record consumed by the
// forecasting pipeline.
func (s RegionalSummary) TimeSeriesPoint() TimeSeriesPoint {
	return TimeSeriesPoint{
		Date:           s.Date,
		CaseCount:      s.CaseCount,
		PneumoniaCount: s.PneumoniaCount,
		SevereCount:    s.SevereCount,
		Deaths:         s.Deaths,
		RegionID:       s.RegionID,
		RegionName:     s.RegionName,
	}
}

// CaseSummary is one day of aggregate counts for a single hospital.
type CaseSummary struct {
	HospitalID     string  `json:"hospital_id" bson:"hospital_id"`
	Date           string  `json:"date" bson:"date"`
	CaseCount      int     `json:"case_count" bson:"case_count"`
	NormalCount    int     `json:"normal_count" bson:"normal_count"`
	PneumoniaCount int     `json:"pneumonia_count" bson:"pneumonia_count"`
	SevereCount    int     `json:"severe_count" bson:"severe_count"`
	Deaths         int     `json:"deaths" bson:"deaths"`
	ConfidenceSum  float64 `json:"-" bson:"confidence_sum"`
}

// TimeSeriesPoint projects the summary onto the series record consumed by the
// forecasting pipeline.
func (s CaseSummary) TimeSeriesPoint() TimeSeriesPoint {
	return TimeSeriesPoint{
		Date:           s.Date,
		CaseCount:      s.CaseCount,
		PneumoniaCount: s.PneumoniaCount,
		SevereCount:    s.SevereCount,
		Deaths:         s.Deaths,
	}
}

// CaseStats is an aggregate over a window of daily summaries.
type CaseStats struct {
	CaseCount      int     `json:"case_count" bson:"case_count"`
	NormalCount    int     `json:"normal_count" bson:"normal_count"`
	PneumoniaCount int     `json:"pneumonia_count" bson:"pneumonia_count"`
	SevereCount    int     `json:"severe_count" bson:"severe_count"`
	Deaths         int     `json:"deaths" bson:"deaths"`
	AvgConfidence  float64 `json:"avg_confidence" bson:"avg_confidence"`
}

// ResourceSnapshot is one day of reported resource availability for a
// hospital.
type ResourceSnapshot struct {
	HospitalID           string  `json:"hospital_id" bson:"hospital_id"`
	Date                 string  `json:"date" bson:"date"`
	ICUBedsAvailable     int     `json:"icu_beds_available" bson:"icu_beds_available"`
	VentilatorsAvailable int     `json:"ventilators_available" bson:"ventilators_available"`
	OxygenSupplyDays     float64 `json:"oxygen_supply_days" bson:"oxygen_supply_days"`
	StaffAvailable       int     `json:"staff_available" bson:"staff_available"`
}
