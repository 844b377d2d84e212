package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	APIToken string `json:"apiToken"`
	UserID   string `json:"userId"`
}

type ResendConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConfirmEmailResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
