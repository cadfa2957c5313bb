package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserExists = errors.New("user already exists with this email")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAccountDeactivated = errors.New("account is deactivated")

// Profile holds the optional candidate details attached to a user.
type Profile struct {
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Resume     string   `json:"resume,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
	LinkedIn   string   `json:"linkedIn,omitempty"`
	GitHub     string   `json:"github,omitempty"`
	Portfolio  string   `json:"portfolio,omitempty"`
}

// User models an account in the system. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      *Profile  `json:"profile,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
