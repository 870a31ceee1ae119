package store

import (
	"context"
	"errors"

	"medbid-backend/internal/models"

	"gorm.io/gorm"
)

// FindPatientByEmail returns the patient with the given email, or nil
// if no patient has it.
func (s *Store) FindPatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.WithContext(ctx).Where("emailid = ?", email).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// CreatePatient inserts the patient and fills in its generated id.
// A unique-index violation on emailid maps to ErrDuplicateEmail.
func (s *Store) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if patient.Role == "" {
		patient.Role = "patient"
	}
	err := s.db.WithContext(ctx).Create(patient).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

// PatientExists reports whether a patient row with the given id exists.
func (s *Store) PatientExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
