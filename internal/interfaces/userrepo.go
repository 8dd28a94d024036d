package interfaces

import (
	"context"

	"github.com/avator7/todoapi/internal/models"
)

// UserRepository defines the contract for storing and retrieving User data.
// This interface is database-agnostic.
type UserRepository interface {
	// AddUser persists a new user and returns its system-assigned id.
	// Username uniqueness is deliberately not enforced here.
	AddUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByUsername returns the first user matching the username in
	// storage order, or (nil, nil) when no user matches.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// EnsureSchema creates the users table if it does not exist.
	EnsureSchema(ctx context.Context) error
	Close(ctx context.Context) error
}
