package feedback

type CreateFeedbackRequest struct {
	Name    string `json:"name" validate:"max=120"`
	Email   string `json:"email" validate:"omitempty,email"`
	Role    string `json:"role" validate:"omitempty,oneof=donor receiver volunteer organization visitor"`
	Rating  int    `json:"rating" validate:"min=0,max=5"`
	Message string `json:"message" validate:"required,min=5"`
	UID     string `json:"uid"`
}
