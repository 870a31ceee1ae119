package store

import (
	"context"
	"errors"

	"medbid-backend/internal/models"

	"gorm.io/gorm"
)

// CreateBid inserts the bid and fills in its generated id. New bids
// always start pending, whatever the caller set.
func (s *Store) CreateBid(ctx context.Context, bid *models.Bid) error {
	bid.Status = models.BidStatusPending
	return s.db.WithContext(ctx).Create(bid).Error
}

// ListBidsByPatientEmail returns all bids of the patient with the given
// email. An unknown email yields an empty slice, not an error.
func (s *Store) ListBidsByPatientEmail(ctx context.Context, email string) ([]models.Bid, error) {
	patient, err := s.FindPatientByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return []models.Bid{}, nil
	}

	bids := []models.Bid{}
	if err := s.db.WithContext(ctx).Where("patient_id = ?", patient.ID).Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// ListAllBids returns every bid, newest id first.
func (s *Store) ListAllBids(ctx context.Context) ([]models.Bid, error) {
	bids := []models.Bid{}
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// FindBidByID returns the bid with the given id, or nil if none exists.
func (s *Store) FindBidByID(ctx context.Context, id uint) (*models.Bid, error) {
	var bid models.Bid
	err := s.db.WithContext(ctx).First(&bid, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// SetBidStatus updates the bid's status and returns the updated row, or
// nil if no bid has that id. The status value itself is the caller's
// policy; nothing here restricts it.
func (s *Store) SetBidStatus(ctx context.Context, id uint, status string) (*models.Bid, error) {
	bid, err := s.FindBidByID(ctx, id)
	if err != nil || bid == nil {
		return nil, err
	}
	bid.Status = status
	if err := s.db.WithContext(ctx).Save(bid).Error; err != nil {
		return nil, err
	}
	return bid, nil
}
