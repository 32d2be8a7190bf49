package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserCreate represents registration input.
type UserCreate struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserLogin represents login credentials.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRepository defines user storage.
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *User) error

	// GetByEmail returns (nil, nil) when no user has the email.
	// Lookup is case-sensitive, matching the stored value.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
