package handler

import "github.com/careerhub/job-board-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is the payload for both register and login. The user's
// password hash is excluded by the domain type's serialization rules.
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
