package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Hospital is a registered reporting facility.
type Hospital struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Country            string    `json:"country"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	RegistrationNumber string    `json:"registration_number" gorm:"unique_index"`
	TotalBeds          int       `json:"total_beds"`
	ICUBeds            int       `json:"icu_beds" gorm:"column:icu_beds"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Upload groups a batch of chest X-ray images submitted in one request.
type Upload struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	HospitalID uuid.UUID `json:"hospital_id" gorm:"type:uuid;index"`
	UserID     string    `json:"user_id"`
	ImageCount int       `json:"image_count"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Upload statuses.
const (
	UploadStatusProcessing = "processing"
	UploadStatusCompleted  = "completed"
)

// Classifier labels.
const (
	PredictionNormal    = "NORMAL"
	PredictionPneumonia = "PNEUMONIA"
)

// Case severities derived from classifier confidence.
const (
	CaseSeverityMild     = "mild"
	CaseSeverityModerate = "moderate"
	CaseSeveritySevere   = "severe"
)

// Analysis is the classification outcome for one image of an upload.
type Analysis struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UploadID         uuid.UUID `json:"upload_id" gorm:"type:uuid;index"`
	ImagePath        string    `json:"image_path"`
	AIPrediction     string    `json:"ai_prediction" gorm:"column:ai_prediction"`
	Confidence       float64   `json:"confidence"`
	Severity         string    `json:"severity"`
	ProcessingTimeMS int       `json:"processing_time_ms" gorm:"column:processing_time_ms"`
	ModelVersion     string    `json:"model_version"`
	HeatmapPath      string    `json:"heatmap_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SymptomList []string

func (l SymptomList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *SymptomList) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// PatientMetadata is the anonymized patient context attached to an analysis.
type PatientMetadata struct {
	ID                uuid.UUID   `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AnalysisID        uuid.UUID   `json:"analysis_id" gorm:"type:uuid;index"`
	AgeRange          string      `json:"age_range"`
	Gender            string      `json:"gender"`
	VaccinationStatus string      `json:"vaccination_status"`
	Symptoms          SymptomList `json:"symptoms" gorm:"type:jsonb;not null;default '[]'"`
	Outcome           string      `json:"outcome"`
	CreatedAt         time.Time   `json:"created_at"`
}
