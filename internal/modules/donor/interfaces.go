package donor

import (
	"context"

	"lifeline/internal/domain"
)

type DonorStore interface {
	Upsert(ctx context.Context, d *domain.Donor) error
	GetByUID(ctx context.Context, uid string) (*domain.Donor, error)
}
