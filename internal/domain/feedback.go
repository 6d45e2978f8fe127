package domain

import "time"

type FeedbackRole string

const (
	FeedbackRoleDonor        FeedbackRole = "donor"
	FeedbackRoleReceiver     FeedbackRole = "receiver"
	FeedbackRoleVolunteer    FeedbackRole = "volunteer"
	FeedbackRoleOrganization FeedbackRole = "organization"
	FeedbackRoleVisitor      FeedbackRole = "visitor"
	FeedbackRoleUnset        FeedbackRole = ""
)

// Feedback is a public testimonial shown on the home page.
type Feedback struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email,omitempty"`
	Role    FeedbackRole `json:"role"`
	Rating  int          `json:"rating" validate:"gte=0,lte=5"`
	Message string       `json:"message" validate:"required,min=5"`
	UID     string       `json:"uid,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
