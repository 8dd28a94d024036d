package todoservice

const (
	// Error messages for todo service operations
	ErrFailedToCreateTodo = "failed to create todo"
	ErrFailedToListTodos  = "failed to list todos"
	ErrFailedToGetTodo    = "failed to get todo"
	ErrFailedToUpdateTodo = "failed to update todo"
	ErrFailedToDeleteTodo = "failed to delete todo"
	ErrTodoNotFound       = "todo not found"
)
