package stats

import (
	"context"

	"lifeline/internal/repository"
)

type PublicStats struct {
	DonorsCount      int64 `json:"donorsCount"`
	DistrictCoverage int   `json:"districtCoverage"`
	FeedbackCount    int64 `json:"feedbackCount"`
}

type Service struct {
	donors   *repository.DonorRepository
	feedback *repository.FeedbackRepository
}

func NewService(donors *repository.DonorRepository, feedback *repository.FeedbackRepository) *Service {
	return &Service{donors: donors, feedback: feedback}
}

func (s *Service) Public(ctx context.Context) (*PublicStats, error) {
	donorsCount, err := s.donors.Count(ctx)
	if err != nil {
		return nil, err
	}

	districts, err := s.donors.DistinctDistricts(ctx)
	if err != nil {
		return nil, err
	}

	feedbackCount, err := s.feedback.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &PublicStats{
		DonorsCount:      donorsCount,
		DistrictCoverage: len(districts),
		FeedbackCount:    feedbackCount,
	}, nil
}
