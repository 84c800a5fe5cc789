package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pulmoguard/surveillance-api/schema"
)

// ErrHospitalRegistered - a hospital with the same registration number exists
var ErrHospitalRegistered = errors.New("hospital already registered")

const uniqueViolationCode = pq.ErrorCode("23505")

// CreateHospital registers a reporting facility into the surveillance system
func (s *SurveillanceStore) CreateHospital(hospital schema.Hospital) (*schema.Hospital, error) {
	hospital.ID = uuid.New()

	if err := s.ormDB.Create(&hospital).Error; nil != err {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			return nil, ErrHospitalRegistered
		}
		return nil, err
	}

	return &hospital, nil
}

// GetHospital returns the hospital of a given id
func (s *SurveillanceStore) GetHospital(id uuid.UUID) (*schema.Hospital, error) {
	var h schema.Hospital
	if err := s.ormDB.Where("id = ?", id).First(&h).Error; nil != err {
		return nil, err
	}
	return &h, nil
}

// GetHospitalByRegistration returns the hospital of a given registration
// number
func (s *SurveillanceStore) GetHospitalByRegistration(registrationNumber string) (*schema.Hospital, error) {
	var h schema.Hospital
	if err := s.ormDB.Where("registration_number = ?", registrationNumber).First(&h).Error; nil != err {
		return nil, err
	}
	return &h, nil
}

// ListHospitals returns registered hospitals, optionally narrowed to a
// region. Empty filter values are ignored.
func (s *SurveillanceStore) ListHospitals(city, state, country string) ([]schema.Hospital, error) {
	query := s.ormDB.Model(&schema.Hospital{})
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}

	hospitals := make([]schema.Hospital, 0)
	if err := query.Order("name").Find(&hospitals).Error; nil != err {
		return nil, err
	}
	return hospitals, nil
}

// HospitalCapacity returns the registered bed capacity of one hospital.
// Ventilator availability lives in the resource snapshots and is filled in
// by the caller.
func (s *SurveillanceStore) HospitalCapacity(id uuid.UUID) (schema.CapacitySnapshot, error) {
	h, err := s.GetHospital(id)
	if nil != err {
		return schema.CapacitySnapshot{}, err
	}
	return schema.CapacitySnapshot{
		TotalBeds: h.TotalBeds,
		ICUBeds:   h.ICUBeds,
	}, nil
}

// TotalCapacity sums registered bed capacity over a region. Empty filter
// values widen the sum, so three empty filters return the system total.
func (s *SurveillanceStore) TotalCapacity(city, state, country string) (schema.CapacitySnapshot, error) {
	query := s.ormDB.Model(&schema.Hospital{})
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var result struct {
		TotalBeds int `gorm:"column:total_beds"`
		ICUBeds   int `gorm:"column:icu_beds"`
	}
	err := query.
		Select("coalesce(sum(total_beds), 0) as total_beds, coalesce(sum(icu_beds), 0) as icu_beds").
		Scan(&result).Error
	if nil != err {
		return schema.CapacitySnapshot{}, err
	}

	return schema.CapacitySnapshot{
		TotalBeds: result.TotalBeds,
		ICUBeds:   result.ICUBeds,
	}, nil
}
