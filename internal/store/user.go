// Package store defines the persistence interfaces for the application's
// entities, along with the shared store error taxonomy.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// UserStore defines the interface for the account directory.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrUsernameExists if the username is already taken
	// (case-sensitive exact match).
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains all fields except the plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains all fields except the plaintext password.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
