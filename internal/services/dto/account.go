package dto

// RequestInvitationRequest is the public form for requesting an account.
type RequestInvitationRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Comments  string `json:"comments" validate:"max=1000"`
}

// ActivateAccountRequest completes activation of an invited account.
type ActivateAccountRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=30"`
	LastName        string `json:"last_name" validate:"required,max=30"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ActivationStateResponse describes the activation form state for a token.
type ActivationStateResponse struct {
	TokenIsUsed bool   `json:"token_is_used"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshRequest exchanges a live refresh token for a fresh access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionResponse is returned whenever a session is established.
type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    int64        `json:"expires_at"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Bio         string   `json:"bio,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	IsModerator bool     `json:"is_moderator"`
}
