package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID returns shared.ErrNotFound when no user has id
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail returns shared.ErrNotFound when no user has email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll lists users, optionally restricted to one role
	FindAll(ctx context.Context, role Role) ([]User, error)

	// Create inserts user; a taken email yields shared.ErrAlreadyExists
	Create(ctx context.Context, user *User) error

	// Update persists changes to an existing user
	Update(ctx context.Context, user *User) error

	// Delete removes the user and returns the number of rows removed
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
