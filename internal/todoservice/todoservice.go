package todoservice

import (
	"context"
	"fmt"

	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/pkg/helper"
)

type TodoService struct {
	TodoRepo interfaces.TodoRepository
	Logger   interfaces.Logger
}

// NewTodoService creates a new TodoService instance.
func NewTodoService(repo interfaces.TodoRepository, logger interfaces.Logger) *TodoService {
	return &TodoService{
		TodoRepo: repo,
		Logger:   logger,
	}
}

// CreateTodo creates a new item with completed=false.
func (s *TodoService) CreateTodo(ctx context.Context, title string) (*models.Todo, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Creating todo", "func", funcName, "title", title)

	todo, err := s.TodoRepo.AddTodo(ctx, title)
	if err != nil {
		s.Logger.Error(ErrFailedToCreateTodo, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreateTodo, err)
	}

	s.Logger.Info("Todo created successfully", "func", funcName, "ID", todo.ID)
	return todo, nil
}

// ListTodos returns items in storage order with offset/limit paging.
func (s *TodoService) ListTodos(ctx context.Context, skip, limit int64) ([]models.Todo, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Listing todos", "func", funcName, "skip", skip, "limit", limit)

	todos, err := s.TodoRepo.ListTodos(ctx, skip, limit)
	if err != nil {
		s.Logger.Error(ErrFailedToListTodos, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToListTodos, err)
	}
	return todos, nil
}

// GetTodo returns the item, or (nil, nil) when the id is absent.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Getting todo", "func", funcName, "ID", id)

	todo, err := s.TodoRepo.GetTodoByID(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToGetTodo, "func", funcName, "ID", id, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToGetTodo, err)
	}
	return todo, nil
}

// UpdateTodo applies a partial update. A nil title or completed pointer
// leaves the stored value unchanged; a non-nil pointer overwrites it, zero
// values included. Returns (nil, nil) when the id is absent.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, title *string, completed *bool) (*models.Todo, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Updating todo", "func", funcName, "ID", id)

	fields := map[string]interface{}{}
	if title != nil {
		fields["title"] = *title
	}
	if completed != nil {
		fields["completed"] = *completed
	}

	todo, err := s.TodoRepo.UpdateTodo(ctx, id, fields)
	if err != nil {
		s.Logger.Error(ErrFailedToUpdateTodo, "func", funcName, "ID", id, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToUpdateTodo, err)
	}
	if todo == nil {
		s.Logger.Warn(ErrTodoNotFound, "func", funcName, "ID", id)
	}
	return todo, nil
}

// DeleteTodo removes the item. Returns false when the id is absent.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Deleting todo", "func", funcName, "ID", id)

	deleted, err := s.TodoRepo.DeleteTodo(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToDeleteTodo, "func", funcName, "ID", id, "error", err)
		return false, fmt.Errorf("%s: %w", ErrFailedToDeleteTodo, err)
	}
	if !deleted {
		s.Logger.Warn(ErrTodoNotFound, "func", funcName, "ID", id)
	}
	return deleted, nil
}
