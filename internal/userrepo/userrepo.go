package userrepo

import (
	"context"
	"fmt"

	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/models"
)

const UsersTable = "users"

var usersSchema = []interfaces.ColumnDef{
	{Name: "id", Type: interfaces.ColumnID},
	{Name: "username", Type: interfaces.ColumnText},
	{Name: "hashed_password", Type: interfaces.ColumnText},
}

// UserRepository persists User records through the generic DBClient.
// It works unchanged against both SQLite and PostgreSQL backends.
type UserRepository struct {
	dbClient interfaces.DBClient
}

// NewUserRepository creates a repository over the given database client.
func NewUserRepository(dbClient interfaces.DBClient) (*UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &UserRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user and returns its system-assigned id.
// Username uniqueness is not enforced: duplicates are stored as-is and
// lookups return the first match in storage order.
func (r *UserRepository) AddUser(ctx context.Context, user models.User) (int64, error) {
	doc := map[string]interface{}{
		"username":        user.Username,
		"hashed_password": user.HashedPassword,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, UsersTable, doc)
	if err != nil {
		return 0, fmt.Errorf("failed to add user: %w", err)
	}
	return insertedID, nil
}

// GetUserByUsername retrieves the first user matching the username in
// storage order, or (nil, nil) when no user matches.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	filter := map[string]interface{}{"username": username}
	if err := r.dbClient.FindOne(ctx, UsersTable, filter, &user); err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	if user.ID == 0 { // zero ID after FindOne means no row matched
		return nil, nil
	}
	return &user, nil
}

// EnsureSchema creates the users table if it does not exist.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, UsersTable, usersSchema)
}

// Close closes the underlying database connection.
func (r *UserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
