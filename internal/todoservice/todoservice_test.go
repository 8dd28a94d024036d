package todoservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avator7/todoapi/internal/interfaces/mocks"
	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/pkg/zerolog"
)

func newTestService(t *testing.T) (*TodoService, *mocks.MockTodoRepository) {
	t.Helper()
	todoRepo := mocks.NewMockTodoRepository(t)
	service := NewTodoService(todoRepo, zerolog.NewNopLogger())
	return service, todoRepo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTodo(t *testing.T) {
	service, todoRepo := newTestService(t)

	created := &models.Todo{ID: 1, Title: "Buy milk", Completed: false}
	todoRepo.On("AddTodo", mock.Anything, "Buy milk").Return(created, nil)

	todo, err := service.CreateTodo(context.Background(), "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, created, todo)
}

func TestListTodos(t *testing.T) {
	service, todoRepo := newTestService(t)

	stored := []models.Todo{{ID: 2, Title: "B"}}
	todoRepo.On("ListTodos", mock.Anything, int64(1), int64(1)).Return(stored, nil)

	todos, err := service.ListTodos(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, todos)
}

func TestGetTodo_Absent(t *testing.T) {
	service, todoRepo := newTestService(t)

	todoRepo.On("GetTodoByID", mock.Anything, int64(42)).Return(nil, nil)

	todo, err := service.GetTodo(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, todo)
}

func TestUpdateTodo_FieldSelection(t *testing.T) {
	tests := []struct {
		name       string
		title      *string
		completed  *bool
		wantFields map[string]interface{}
	}{
		{
			name:       "title only",
			title:      strPtr("Buy bread"),
			wantFields: map[string]interface{}{"title": "Buy bread"},
		},
		{
			name:       "completed only",
			completed:  boolPtr(true),
			wantFields: map[string]interface{}{"completed": true},
		},
		{
			name:       "both fields",
			title:      strPtr("Done"),
			completed:  boolPtr(true),
			wantFields: map[string]interface{}{"title": "Done", "completed": true},
		},
		{
			name:       "explicit zero values still overwrite",
			title:      strPtr(""),
			completed:  boolPtr(false),
			wantFields: map[string]interface{}{"title": "", "completed": false},
		},
		{
			name:       "no fields",
			wantFields: map[string]interface{}{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, todoRepo := newTestService(t)
			updated := &models.Todo{ID: 1}
			todoRepo.On("UpdateTodo", mock.Anything, int64(1), tt.wantFields).Return(updated, nil)

			todo, err := service.UpdateTodo(context.Background(), 1, tt.title, tt.completed)
			require.NoError(t, err)
			assert.Equal(t, updated, todo)
		})
	}
}

func TestUpdateTodo_Absent(t *testing.T) {
	service, todoRepo := newTestService(t)

	todoRepo.On("UpdateTodo", mock.Anything, int64(42), mock.Anything).Return(nil, nil)

	todo, err := service.UpdateTodo(context.Background(), 42, strPtr("X"), nil)
	require.NoError(t, err)
	assert.Nil(t, todo)
}

func TestDeleteTodo(t *testing.T) {
	service, todoRepo := newTestService(t)

	todoRepo.On("DeleteTodo", mock.Anything, int64(1)).Return(true, nil)
	todoRepo.On("DeleteTodo", mock.Anything, int64(42)).Return(false, nil)

	deleted, err := service.DeleteTodo(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.DeleteTodo(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteTodo_RepoError(t *testing.T) {
	service, todoRepo := newTestService(t)

	todoRepo.On("DeleteTodo", mock.Anything, int64(1)).Return(false, errors.New("storage unavailable"))

	deleted, err := service.DeleteTodo(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, deleted)
}
