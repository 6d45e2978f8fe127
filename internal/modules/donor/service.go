package donor

import (
	"context"
	"errors"
	"strings"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	donors DonorStore
}

func NewService(donors DonorStore) *Service {
	return &Service{donors: donors}
}

// Upsert saves the caller's donor profile wholesale. uid and email come
// from the verified identity, never from the request body.
func (s *Service) Upsert(ctx context.Context, uid, email string, req UpsertDonorRequest) (*domain.Donor, error) {
	if uid == "" {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		return nil, ErrValidation
	}

	d := &domain.Donor{
		UID:               uid,
		Email:             email,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Phone:             strings.TrimSpace(req.Phone),
		Address:           req.Address,
		Age:               req.Age,
		BloodGroup:        req.BloodGroup,
		District:          req.District,
		Division:          req.Division,
		PinCode:           req.PinCode,
		LastDonationMonth: req.LastDonationMonth,
		LastDonationYear:  req.LastDonationYear,
	}

	if err := s.donors.Upsert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetMine returns the caller's profile, or nil when none exists yet.
func (s *Service) GetMine(ctx context.Context, uid string) (*domain.Donor, error) {
	d, err := s.donors.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}
