package store

import (
	"github.com/google/uuid"

	"github.com/pulmoguard/surveillance-api/schema"
)

// CreateUpload opens an image batch for a hospital
func (s *SurveillanceStore) CreateUpload(hospitalID uuid.UUID, userID string, imageCount int) (*schema.Upload, error) {
	u := schema.Upload{
		ID:         uuid.New(),
		HospitalID: hospitalID,
		UserID:     userID,
		ImageCount: imageCount,
		Status:     schema.UploadStatusProcessing,
	}

	if err := s.ormDB.Create(&u).Error; nil != err {
		return nil, err
	}

	return &u, nil
}

// GetUpload returns the upload of a given id
func (s *SurveillanceStore) GetUpload(id uuid.UUID) (*schema.Upload, error) {
	var u schema.Upload
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; nil != err {
		return nil, err
	}
	return &u, nil
}

// CompleteUpload marks an upload as fully processed
func (s *SurveillanceStore) CompleteUpload(id uuid.UUID) error {
	return s.ormDB.Model(&schema.Upload{}).
		Where("id = ?", id).
		Update("status", schema.UploadStatusCompleted).Error
}

// CreateAnalysis stores the classification outcome of one image
func (s *SurveillanceStore) CreateAnalysis(analysis *schema.Analysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	return s.ormDB.Create(analysis).Error
}

// CreatePatientMetadata stores the anonymized patient context of an analysis
func (s *SurveillanceStore) CreatePatientMetadata(metadata *schema.PatientMetadata) error {
	if metadata.ID == uuid.Nil {
		metadata.ID = uuid.New()
	}
	if metadata.Symptoms == nil {
		metadata.Symptoms = schema.SymptomList{}
	}
	return s.ormDB.Create(metadata).Error
}

// ListAnalyses returns the analyses of an upload in processing order
func (s *SurveillanceStore) ListAnalyses(uploadID uuid.UUID) ([]schema.Analysis, error) {
	analyses := make([]schema.Analysis, 0)
	if err := s.ormDB.
		Where("upload_id = ?", uploadID).
		Order("created_at").
		Find(&analyses).Error; nil != err {
		return nil, err
	}
	return analyses, nil
}
