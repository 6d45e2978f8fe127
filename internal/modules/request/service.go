package request

import (
	"context"
	"errors"
	"strings"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	requests RequestStore
}

func NewService(requests RequestStore) *Service {
	return &Service{requests: requests}
}

// Create opens a new blood request owned by uid. Contact fields are a
// snapshot taken now; later profile edits do not touch old requests.
func (s *Service) Create(ctx context.Context, uid, email string, req CreateRequest) (*domain.BloodRequest, error) {
	if strings.TrimSpace(req.BloodGroup) == "" {
		return nil, ErrValidation
	}

	units := req.Units
	if units <= 0 {
		units = 1
	}

	requesterEmail := req.RequesterEmail
	if requesterEmail == "" {
		requesterEmail = email
	}

	b := &domain.BloodRequest{
		RequesterUID:    uid,
		RequesterName:   req.RequesterName,
		RequesterEmail:  requesterEmail,
		RequesterPhone:  req.RequesterPhone,
		BloodGroup:      req.BloodGroup,
		Division:        req.Division,
		District:        req.District,
		HospitalName:    req.HospitalName,
		HospitalAddress: req.HospitalAddress,
		PatientName:     req.PatientName,
		Relation:        req.Relation,
		Units:           units,
		NeededDate:      req.NeededDate,
		NeededTime:      req.NeededTime,
		Reason:          req.Reason,
		Note:            req.Note,
		Status:          domain.RequestOpen,
	}

	if err := s.requests.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, uid string) ([]domain.BloodRequest, error) {
	return s.requests.ListByRequester(ctx, uid)
}

// Close marks the request closed. There is no reopen. Rows that are
// missing or owned by someone else both report ErrNotFound.
func (s *Service) Close(ctx context.Context, uid string, id int64) (*domain.BloodRequest, error) {
	b, err := s.requests.CloseOwned(ctx, uid, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, uid string, id int64) error {
	n, err := s.requests.DeleteOwned(ctx, uid, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
