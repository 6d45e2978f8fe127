package feedback

import (
	"context"
	"strings"

	"lifeline/internal/domain"
)

const (
	minMessageLen    = 5
	defaultListLimit = 6
	maxListLimit     = 50
)

var validRoles = map[domain.FeedbackRole]bool{
	domain.FeedbackRoleDonor:        true,
	domain.FeedbackRoleReceiver:     true,
	domain.FeedbackRoleVolunteer:    true,
	domain.FeedbackRoleOrganization: true,
	domain.FeedbackRoleVisitor:      true,
	domain.FeedbackRoleUnset:        true,
}

type Service struct {
	feedback FeedbackStore
}

func NewService(feedback FeedbackStore) *Service {
	return &Service{feedback: feedback}
}

func (s *Service) Create(ctx context.Context, req CreateFeedbackRequest) (*domain.Feedback, error) {
	message := strings.TrimSpace(req.Message)
	if len(message) < minMessageLen {
		return nil, ErrValidation
	}
	if req.Rating < 0 || req.Rating > 5 {
		return nil, ErrValidation
	}

	role := domain.FeedbackRole(req.Role)
	if !validRoles[role] {
		return nil, ErrValidation
	}

	f := &domain.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Role:    role,
		Rating:  req.Rating,
		Message: message,
		UID:     req.UID,
	}

	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) ListPublic(ctx context.Context, limit int) ([]domain.Feedback, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.feedback.ListRecent(ctx, limit)
}
