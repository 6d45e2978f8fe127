package domain

import "time"

// Donor is the identity-keyed donor profile. At most one row exists per
// verified uid; profile saves replace the row wholesale.
type Donor struct {
	ID    int64  `json:"id"`
	UID   string `json:"uid"`
	Email string `json:"email"`

	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`

	Address string `json:"address,omitempty"`
	Age     *int   `json:"age,omitempty"`

	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Division   string `json:"division"`
	PinCode    string `json:"pinCode"`

	// Self-reported fallback when no donation row exists yet.
	// Month is a 3-letter abbreviation ("Jan".."Dec"), year a 4-digit string.
	LastDonationMonth string `json:"lastDonationMonth"`
	LastDonationYear  string `json:"lastDonationYear"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
