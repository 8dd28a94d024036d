package interfaces

import (
	"context"

	"github.com/avator7/todoapi/internal/models"
)

type TodoService interface {
	CreateTodo(ctx context.Context, title string) (*models.Todo, error)
	ListTodos(ctx context.Context, skip, limit int64) ([]models.Todo, error)
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)
	// UpdateTodo applies a partial update: nil pointers leave the stored
	// value untouched. Returns (nil, nil) when the id is absent.
	UpdateTodo(ctx context.Context, id int64, title *string, completed *bool) (*models.Todo, error)
	// DeleteTodo returns false when the id is absent.
	DeleteTodo(ctx context.Context, id int64) (bool, error)
}
