package userservice

import (
	"context"
	"fmt"

	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/pkg/helper"
)

type UserService struct {
	UserRepo interfaces.UserRepository
	Hasher   interfaces.PasswordHasher
	Logger   interfaces.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(repo interfaces.UserRepository, hasher interfaces.PasswordHasher, logger interfaces.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		Hasher:   hasher,
		Logger:   logger,
	}
}

// RegisterUser hashes the password and adds the user via the repository,
// returning the created record. The plaintext is never persisted.
func (s *UserService) RegisterUser(ctx context.Context, username, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Registering user", "func", funcName, "user", username)

	digest, err := s.Hasher.Hash(password)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToHashPassword, err)
	}

	user := models.NewUser(username, digest)
	userID, err := s.UserRepo.AddUser(ctx, *user)
	if err != nil {
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToRegisterUser, err)
	}
	user.ID = userID

	s.Logger.Info("User registered successfully", "func", funcName, "user", username, "ID", userID)
	return user, nil
}

// AuthenticateUser verifies a user's credentials and returns the matched
// record, or (nil, nil) on rejection. Only repository faults surface as
// errors. The lookup-then-verify sequence always runs both steps so the
// behavior stays uniform whether the username or the password is wrong.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Authenticating user", "func", funcName, "user", username)

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}

	var digest string
	if user != nil {
		digest = user.HashedPassword
	}

	// Verify even for an unknown user so both rejection paths do the
	// same amount of work and are indistinguishable to the caller.
	if !s.Hasher.Check(password, digest) || user == nil {
		s.Logger.Warn(ErrInvalidCredentials, "func", funcName, "user", username)
		return nil, nil
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	return user, nil
}
