package userrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/pkg/databases/sqlite"
)

func newTestRepo(t *testing.T) *UserRepository {
	t.Helper()
	client := sqlite.NewSqliteDatabaseClient()
	require.NoError(t, client.Connect(context.Background(), ":memory:"))
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	repo, err := NewUserRepository(client)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestNewUserRepository_NilClient(t *testing.T) {
	repo, err := NewUserRepository(nil)
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestAddUserAndGetUserByUsername(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.AddUser(ctx, models.User{Username: "alice", HashedPassword: "digest-a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "digest-a", user.HashedPassword)
}

func TestGetUserByUsername_Absent(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.GetUserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAddUser_DuplicateUsernamesPermitted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	firstID, err := repo.AddUser(ctx, models.User{Username: "alice", HashedPassword: "digest-1"})
	require.NoError(t, err)
	_, err = repo.AddUser(ctx, models.User{Username: "alice", HashedPassword: "digest-2"})
	require.NoError(t, err)

	// Lookup returns the first record in storage order.
	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, firstID, user.ID)
	assert.Equal(t, "digest-1", user.HashedPassword)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
}
