package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avator7/todoapi/internal/hasher"
	"github.com/avator7/todoapi/internal/interfaces/mocks"
	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/pkg/zerolog"
)

func newTestService(t *testing.T) (*UserService, *mocks.MockUserRepository) {
	t.Helper()
	userRepo := mocks.NewMockUserRepository(t)
	service := NewUserService(userRepo, hasher.NewBcryptHasher(4), zerolog.NewNopLogger())
	return service, userRepo
}

func TestRegisterUser(t *testing.T) {
	service, userRepo := newTestService(t)

	var storedDigest string
	userRepo.On("AddUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		storedDigest = u.HashedPassword
		return u.Username == "alice" && u.HashedPassword != "secret"
	})).Return(int64(7), nil)

	user, err := service.RegisterUser(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.Username)
	// The stored digest verifies against the plaintext but never equals it.
	assert.True(t, service.Hasher.Check("secret", storedDigest))
}

func TestRegisterUser_RepoError(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.On("AddUser", mock.Anything, mock.Anything).Return(int64(0), errors.New("storage unavailable"))

	user, err := service.RegisterUser(context.Background(), "alice", "secret")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestAuthenticateUser(t *testing.T) {
	service, userRepo := newTestService(t)

	digest, err := service.Hasher.Hash("secret")
	require.NoError(t, err)
	stored := &models.User{ID: 1, Username: "alice", HashedPassword: digest}

	userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(stored, nil)
	userRepo.On("GetUserByUsername", mock.Anything, "nobody").Return(nil, nil)

	tests := []struct {
		name     string
		username string
		password string
		want     *models.User
	}{
		{name: "valid credentials", username: "alice", password: "secret", want: stored},
		{name: "wrong password", username: "alice", password: "wrong", want: nil},
		{name: "unknown username", username: "nobody", password: "secret", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.AuthenticateUser(context.Background(), tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestAuthenticateUser_RepoError(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, errors.New("storage unavailable"))

	user, err := service.AuthenticateUser(context.Background(), "alice", "secret")
	assert.Error(t, err)
	assert.Nil(t, user)
}
