package notification

import (
	"context"
	"errors"
	"fmt"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

const (
	defaultListLimit = 30
	maxListLimit     = 100
)

type Service struct {
	notifications NotificationStore
	requests      RequestReader
}

func NewService(notifications NotificationStore, requests RequestReader) *Service {
	return &Service{notifications: notifications, requests: requests}
}

// Send creates one notification targeting toUid for an existing, still
// open blood request. The sender does not have to own the request:
// anyone may forward a request raised on a patient's behalf. Sending
// never touches the request itself.
func (s *Service) Send(ctx context.Context, fromUID string, req SendRequest) (*domain.Notification, error) {
	if req.ToUID == "" || req.RequestID == 0 {
		return nil, ErrValidation
	}

	b, err := s.requests.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if b.Status != domain.RequestOpen {
		return nil, ErrRequestNotOpen
	}

	requestID := req.RequestID
	n := &domain.Notification{
		ToUID:     req.ToUID,
		FromUID:   fromUID,
		Type:      domain.NotificationTypeBloodRequest,
		Title:     "Blood Request",
		Message:   fmt.Sprintf("%s needed at %s (%s), %d unit(s)", b.BloodGroup, b.HospitalName, b.District, b.Units),
		RequestID: &requestID,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListForRecipient(ctx context.Context, uid string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.notifications.ListByRecipient(ctx, uid, limit)
}

// UnreadCount backs the client's polled badge, so it stays a count
// query, never a list fetch.
func (s *Service) UnreadCount(ctx context.Context, uid string) (int64, error) {
	return s.notifications.CountUnread(ctx, uid)
}

func (s *Service) GetByID(ctx context.Context, uid string, id int64) (*domain.Notification, error) {
	n, err := s.notifications.GetOwned(ctx, uid, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// MarkRead flips the read flag for the recipient. Re-marking an
// already-read notification succeeds without change; missing and
// not-owned rows both report ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, uid string, id int64) error {
	err := s.notifications.MarkRead(ctx, uid, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, uid string) error {
	return s.notifications.MarkAllRead(ctx, uid)
}
