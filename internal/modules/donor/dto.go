package donor

type UpsertDonorRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`

	Address string `json:"address"`
	Age     *int   `json:"age"`

	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Division   string `json:"division"`
	PinCode    string `json:"pinCode"`

	LastDonationMonth string `json:"lastDonationMonth"`
	LastDonationYear  string `json:"lastDonationYear"`
}
