package models

// Todo represents a single to-do item.
// Completed is never null in storage: rows are created with completed=false.
type Todo struct {
	ID        int64  `json:"id" mapstructure:"id" db:"id"`
	Title     string `json:"title" mapstructure:"title" db:"title"`
	Completed bool   `json:"completed" mapstructure:"completed" db:"completed"`
}

// NewTodo creates a new Todo with the given title and completed=false.
func NewTodo(title string) *Todo {
	return &Todo{
		Title:     title,
		Completed: false,
	}
}
