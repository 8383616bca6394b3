package handler

import "github.com/sessionbook/booking-api/internal/core/domain"

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=user expert admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// IntendedPath is the route the client originally requested before being
	// sent to the login page, if any.
	IntendedPath string `json:"intended_path,omitempty"`
}

type authResponse struct {
	Token      string       `json:"token,omitempty"`
	User       *domain.User `json:"user,omitempty"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

type meResponse struct {
	User      *domain.User `json:"user"`
	Dashboard string       `json:"dashboard"`
}

type updateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
