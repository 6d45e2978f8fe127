package search

import (
	"context"

	"lifeline/internal/repository"
)

type DonorFinder interface {
	SearchWithLastDonation(ctx context.Context, bloodGroup, district, division string, limit int) ([]repository.DonorSearchRow, error)
}
