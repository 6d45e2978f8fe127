package donation

type CreateDonationRequest struct {
	Date  string `json:"date" binding:"required"`
	Units int    `json:"units"`
	Place string `json:"place"`
	Note  string `json:"note"`
}
