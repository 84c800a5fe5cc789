package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/pulmoguard/surveillance-api/schema"
)

// surveillance main datastore
type SurveillanceCore interface {
	Ping() error

	// Hospital
	CreateHospital(hospital schema.Hospital) (*schema.Hospital, error)
	GetHospital(id uuid.UUID) (*schema.Hospital, error)
	GetHospitalByRegistration(registrationNumber string) (*schema.Hospital, error)
	ListHospitals(city, state, country string) ([]schema.Hospital, error)
	HospitalCapacity(id uuid.UUID) (schema.CapacitySnapshot, error)
	TotalCapacity(city, state, country string) (schema.CapacitySnapshot, error)

	// Upload
	CreateUpload(hospitalID uuid.UUID, userID string, imageCount int) (*schema.Upload, error)
	GetUpload(id uuid.UUID) (*schema.Upload, error)
	CompleteUpload(id uuid.UUID) error
	CreateAnalysis(analysis *schema.Analysis) error
	CreatePatientMetadata(metadata *schema.PatientMetadata) error
	ListAnalyses(uploadID uuid.UUID) ([]schema.Analysis, error)
}

// SurveillanceStore is an implementation of SurveillanceCore
type SurveillanceStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewSurveillanceStore(ormDB *gorm.DB, mongo MongoStore) *SurveillanceStore {
	return &SurveillanceStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *SurveillanceStore) Ping() error {
	return s.ormDB.DB().Ping()
}
