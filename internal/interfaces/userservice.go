package interfaces

import (
	"context"

	"github.com/avator7/todoapi/internal/models"
)

type UserService interface {
	// RegisterUser hashes the password and persists a new user, returning
	// the created record.
	RegisterUser(ctx context.Context, username, password string) (*models.User, error)
	// AuthenticateUser runs the lookup-then-verify sequence. Rejection
	// (unknown user or password mismatch) is (nil, nil); only store faults
	// surface as errors.
	AuthenticateUser(ctx context.Context, username, password string) (*models.User, error)
}
