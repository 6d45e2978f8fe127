package donation

import (
	"context"
	"errors"
	"strings"
	"time"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

// listLimit bounds the personal ledger response.
const listLimit = 50

type Service struct {
	donations DonationStore
	donors    DonorReader
}

func NewService(donations DonationStore, donors DonorReader) *Service {
	return &Service{donations: donations, donors: donors}
}

func (s *Service) Create(ctx context.Context, uid string, req CreateDonationRequest) (*domain.Donation, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrValidation
	}

	units := req.Units
	if units <= 0 {
		units = 1
	}

	d := &domain.Donation{
		UID:   uid,
		Date:  date,
		Units: units,
		Place: req.Place,
		Note:  req.Note,
	}

	// Link the donor profile when one exists; a missing profile is fine,
	// the ledger is keyed by uid either way.
	donor, err := s.donors.GetByUID(ctx, uid)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if donor != nil {
		d.DonorID = &donor.ID
	}

	if err := s.donations.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListMine(ctx context.Context, uid string) ([]domain.Donation, error) {
	return s.donations.ListByUID(ctx, uid, listLimit)
}

func (s *Service) Delete(ctx context.Context, uid string, id int64) error {
	n, err := s.donations.DeleteOwned(ctx, uid, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrValidation
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
