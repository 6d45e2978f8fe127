package donation

import (
	"context"

	"lifeline/internal/domain"
)

type DonationStore interface {
	Create(ctx context.Context, d *domain.Donation) error
	ListByUID(ctx context.Context, uid string, limit int) ([]domain.Donation, error)
	DeleteOwned(ctx context.Context, uid string, id int64) (int64, error)
}

type DonorReader interface {
	GetByUID(ctx context.Context, uid string) (*domain.Donor, error)
}
