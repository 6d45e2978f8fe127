package request

type CreateRequest struct {
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterPhone string `json:"requesterPhone"`

	BloodGroup      string `json:"bloodGroup" binding:"required"`
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
}
