package interfaces

import (
	"context"

	"github.com/avator7/todoapi/internal/models"
)

// TodoRepository defines the contract for storing and retrieving Todo items.
// Absent rows are reported as nil values, never as errors.
type TodoRepository interface {
	// AddTodo persists a new item with completed=false and returns the
	// created record.
	AddTodo(ctx context.Context, title string) (*models.Todo, error)
	// ListTodos returns items in storage (insertion) order, skipping 'skip'
	// rows and returning at most 'limit'.
	ListTodos(ctx context.Context, skip, limit int64) ([]models.Todo, error)
	// GetTodoByID returns the item, or (nil, nil) when the id is absent.
	GetTodoByID(ctx context.Context, id int64) (*models.Todo, error)
	// UpdateTodo overwrites the provided columns on the item and returns
	// the updated record, or (nil, nil) when the id is absent.
	UpdateTodo(ctx context.Context, id int64, fields map[string]interface{}) (*models.Todo, error)
	// DeleteTodo removes the item. Returns false when the id is absent.
	DeleteTodo(ctx context.Context, id int64) (bool, error)
	// EnsureSchema creates the todos table if it does not exist.
	EnsureSchema(ctx context.Context) error
	Close(ctx context.Context) error
}
