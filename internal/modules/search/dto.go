package search

import (
	"time"

	"lifeline/internal/modules/availability"
)

type Criteria struct {
	BloodGroup    string
	District      string
	Division      string
	AvailableOnly bool
}

// Result is the discovery projection: enough to contact a donor,
// nothing more.
type Result struct {
	UID               string               `json:"uid"`
	FirstName         string               `json:"firstName"`
	LastName          string               `json:"lastName"`
	Phone             string               `json:"phone"`
	BloodGroup        string               `json:"bloodGroup"`
	District          string               `json:"district"`
	Division          string               `json:"division"`
	LastDonationMonth string               `json:"lastDonationMonth,omitempty"`
	LastDonationYear  string               `json:"lastDonationYear,omitempty"`
	LastDonationDate  *time.Time           `json:"lastDonationDate,omitempty"`
	UpdatedAt         time.Time            `json:"updatedAt"`
	Availability      availability.Verdict `json:"availability"`
}
