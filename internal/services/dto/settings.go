package dto

// UpdateSettingsRequest changes the account email and, optionally, the
// password. An empty ResetPassword means "keep the current password".
type UpdateSettingsRequest struct {
	Email         string `json:"email" validate:"required,email"`
	ResetPassword string `json:"reset_password" validate:"omitempty,min=8"`
}

// CloseAccountRequest re-confirms the password before the account is closed.
type CloseAccountRequest struct {
	Password string `json:"password" validate:"required"`
}
