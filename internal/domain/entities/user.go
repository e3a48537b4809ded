package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents an account identity. Authentication is by email.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
}

// Profile holds the user-facing details attached 1:1 to a User.
// It is created in the same transaction as its User and never independently.
type Profile struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Description string      `json:"description"`
	Image       null.String `json:"image,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Description string `json:"description"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordInput represents input for overwriting a password
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdateProfileInput represents input for editing the caller's own profile.
// first_name and last_name are checked per-field by the handler so each
// missing one is reported separately.
type UpdateProfileInput struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Description *string `json:"description"`
	Image       *string `json:"image" binding:"omitempty,min=8"`
}

// RefreshInput carries a refresh credential to exchange for a new pair
type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}
