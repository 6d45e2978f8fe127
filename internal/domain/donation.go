package domain

import "time"

// Donation is a single donation event. Rows are append-only: created and
// deleted by the owning uid, never updated in place.
type Donation struct {
	ID      int64  `json:"id"`
	UID     string `json:"uid"`
	DonorID *int64 `json:"donorId,omitempty"`

	Date  time.Time `json:"date" validate:"required"`
	Units int       `json:"units"`
	Place string    `json:"place,omitempty"`
	Note  string    `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
