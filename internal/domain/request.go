package domain

import "time"

type RequestStatus string

const (
	RequestOpen   RequestStatus = "open"
	RequestClosed RequestStatus = "closed"
)

// BloodRequest is owned by the requester uid. Status moves open->closed
// one way; there is no reopen.
type BloodRequest struct {
	ID           int64  `json:"id"`
	RequesterUID string `json:"requesterUid"`

	// Contact snapshot taken at creation time, not live-linked.
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterPhone string `json:"requesterPhone"`

	BloodGroup      string `json:"bloodGroup" validate:"required"`
	Division        string `json:"division"`
	District        string `json:"district"`
	HospitalName    string `json:"hospitalName"`
	HospitalAddress string `json:"hospitalAddress"`
	PatientName     string `json:"patientName"`
	Relation        string `json:"relation"`
	Units           int    `json:"units"`
	NeededDate      string `json:"neededDate"`
	NeededTime      string `json:"neededTime"`
	Reason          string `json:"reason"`
	Note            string `json:"note"`

	Status RequestStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
