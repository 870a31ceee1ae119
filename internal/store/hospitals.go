package store

import (
	"context"
	"errors"

	"medbid-backend/internal/models"

	"gorm.io/gorm"
)

// ListHospitals returns every hospital in storage order.
func (s *Store) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals := []models.Hospital{}
	if err := s.db.WithContext(ctx).Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

// FindHospitalByID returns the hospital with the given id, or nil if
// none exists.
func (s *Store) FindHospitalByID(ctx context.Context, id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := s.db.WithContext(ctx).First(&hospital, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// CreateHospital inserts the hospital and fills in its generated id.
func (s *Store) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	return s.db.WithContext(ctx).Create(hospital).Error
}

// HospitalExists reports whether a hospital row with the given id exists.
func (s *Store) HospitalExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Hospital{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
