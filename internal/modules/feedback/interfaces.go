package feedback

import (
	"context"

	"lifeline/internal/domain"
)

type FeedbackStore interface {
	Create(ctx context.Context, f *domain.Feedback) error
	ListRecent(ctx context.Context, limit int) ([]domain.Feedback, error)
}
