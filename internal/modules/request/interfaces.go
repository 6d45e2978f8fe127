package request

import (
	"context"

	"lifeline/internal/domain"
)

type RequestStore interface {
	Create(ctx context.Context, b *domain.BloodRequest) error
	ListByRequester(ctx context.Context, uid string) ([]domain.BloodRequest, error)
	CloseOwned(ctx context.Context, uid string, id int64) (*domain.BloodRequest, error)
	DeleteOwned(ctx context.Context, uid string, id int64) (int64, error)
}
