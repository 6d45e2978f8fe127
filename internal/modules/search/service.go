package search

import (
	"context"
	"time"

	"lifeline/internal/modules/availability"
)

// maxResults bounds the response size. This is an anti-scraping and
// performance guard, not pagination.
const maxResults = 80

type Service struct {
	donors DonorFinder
	engine availability.Engine
}

func NewService(donors DonorFinder, engine availability.Engine) *Service {
	return &Service{donors: donors, engine: engine}
}

// Search filters donors by exact blood group, district and division,
// joins each to their most recent donation and computes availability.
// With AvailableOnly set, confirmed not-available donors are dropped;
// donors with no reconstructable history stay in, labeled unknown.
func (s *Service) Search(ctx context.Context, criteria Criteria) ([]Result, error) {
	if criteria.BloodGroup == "" || criteria.District == "" || criteria.Division == "" {
		return nil, ErrInvalidQuery
	}

	rows, err := s.donors.SearchWithLastDonation(ctx,
		criteria.BloodGroup, criteria.District, criteria.Division, maxResults)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]Result, 0, len(rows))
	for _, row := range rows {
		last := availability.NoLastDonation()
		if row.LastDonationDate != nil {
			last = availability.LastDonationFromDate(*row.LastDonationDate)
		} else {
			// self-reported month/year fallback from the profile
			last = availability.LastDonationFromMonthYear(row.LastDonationMonth, row.LastDonationYear)
		}

		verdict := s.engine.Evaluate(last, now)
		if criteria.AvailableOnly && verdict == availability.NotAvailable {
			continue
		}

		out = append(out, Result{
			UID:               row.UID,
			FirstName:         row.FirstName,
			LastName:          row.LastName,
			Phone:             row.Phone,
			BloodGroup:        row.BloodGroup,
			District:          row.District,
			Division:          row.Division,
			LastDonationMonth: row.LastDonationMonth,
			LastDonationYear:  row.LastDonationYear,
			LastDonationDate:  row.LastDonationDate,
			UpdatedAt:         row.UpdatedAt,
			Availability:      verdict,
		})
	}
	return out, nil
}
