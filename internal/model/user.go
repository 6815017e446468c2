package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	// Create inserts the user and returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with its password hash.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
