package domain

import (
	"context"
	"time"
)

// User represents a domain user object. PasswordHash is empty for accounts
// created through Google OAuth.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	GoogleID     string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return NewInvalidInputError("email is required")
	}
	if u.Name == "" {
		return NewInvalidInputError("name is required")
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
