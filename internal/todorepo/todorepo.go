package todorepo

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/models"
)

const TodosTable = "todos"

var todosSchema = []interfaces.ColumnDef{
	{Name: "id", Type: interfaces.ColumnID},
	{Name: "title", Type: interfaces.ColumnText},
	{Name: "completed", Type: interfaces.ColumnBool},
}

// TodoRepository persists Todo records through the generic DBClient.
// It works unchanged against both SQLite and PostgreSQL backends.
type TodoRepository struct {
	dbClient interfaces.DBClient
}

// NewTodoRepository creates a repository over the given database client.
func NewTodoRepository(dbClient interfaces.DBClient) (*TodoRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &TodoRepository{dbClient: dbClient}, nil
}

// AddTodo saves a new item with completed=false and returns the created record.
func (r *TodoRepository) AddTodo(ctx context.Context, title string) (*models.Todo, error) {
	todo := models.NewTodo(title)
	doc := map[string]interface{}{
		"title":     todo.Title,
		"completed": todo.Completed,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, TodosTable, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to add todo: %w", err)
	}
	todo.ID = insertedID
	return todo, nil
}

// ListTodos retrieves items in storage order, skipping 'skip' rows and
// returning at most 'limit'.
func (r *TodoRepository) ListTodos(ctx context.Context, skip, limit int64) ([]models.Todo, error) {
	rows, err := r.dbClient.FindMany(ctx, TodosTable, map[string]interface{}{}, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	todos := make([]models.Todo, 0, len(rows))
	for _, row := range rows {
		var todo models.Todo
		if err := decodeRow(row, &todo); err != nil {
			return nil, fmt.Errorf("failed to decode todo row: %w", err)
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// GetTodoByID retrieves the item, or (nil, nil) when the id is absent.
func (r *TodoRepository) GetTodoByID(ctx context.Context, id int64) (*models.Todo, error) {
	var todo models.Todo
	filter := map[string]interface{}{"id": id}
	if err := r.dbClient.FindOne(ctx, TodosTable, filter, &todo); err != nil {
		return nil, fmt.Errorf("failed to get todo by id: %w", err)
	}
	if todo.ID == 0 { // zero ID after FindOne means no row matched
		return nil, nil
	}
	return &todo, nil
}

// UpdateTodo overwrites the provided columns on the item and returns the
// updated record, or (nil, nil) when the id is absent. Columns not present
// in 'fields' are left unchanged.
func (r *TodoRepository) UpdateTodo(ctx context.Context, id int64, fields map[string]interface{}) (*models.Todo, error) {
	if len(fields) == 0 {
		// Nothing to overwrite; the read answers existence too.
		return r.GetTodoByID(ctx, id)
	}

	filter := map[string]interface{}{"id": id}
	affected, err := r.dbClient.UpdateOne(ctx, TodosTable, filter, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetTodoByID(ctx, id)
}

// DeleteTodo removes the item. Returns false when the id is absent.
func (r *TodoRepository) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	filter := map[string]interface{}{"id": id}
	deleted, err := r.dbClient.DeleteOne(ctx, TodosTable, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	return deleted > 0, nil
}

// EnsureSchema creates the todos table if it does not exist.
func (r *TodoRepository) EnsureSchema(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, TodosTable, todosSchema)
}

// Close closes the underlying database connection.
func (r *TodoRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

// decodeRow maps a generic row into a model. Weak typing lets SQLite's
// 0/1 integers decode into the Completed bool.
func decodeRow(row interfaces.Document, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(row)
}
