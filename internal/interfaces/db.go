package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. In practice it is either a
// map[string]interface{} (filters, partial updates, returned rows) or a
// pointer to a struct with `db` tags (scan targets).
type Document interface{}

// DBClient defines the interface for a generic relational database client.
// It abstracts common operations across the supported backends
// (SQLite, PostgreSQL).
type DBClient interface {
	// Connect establishes a connection to the database.
	// It takes a context for cancellation and timeouts, and a DSN string
	// (a file path for SQLite, a connection string for PostgreSQL).
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single row into the specified table and returns
	// the system-assigned integer id of the new row.
	InsertOne(ctx context.Context, tableName string, document Document) (int64, error)

	// FindOne retrieves a single row matching the provided filter and scans
	// it into 'result', a pointer to a struct with `db` tags.
	// An absent row is not an error: the result struct is left zeroed and
	// a nil error is returned.
	FindOne(ctx context.Context, tableName string, filter Document, result Document) error

	// FindMany retrieves rows matching the provided filter in storage
	// (insertion) order, skipping 'skip' rows and returning at most 'limit'.
	// Each row is returned as a map[string]interface{}.
	FindMany(ctx context.Context, tableName string, filter Document, skip, limit int64) ([]Document, error)

	// UpdateOne updates rows matching the filter with the given column
	// values. Returns the count of affected rows.
	UpdateOne(ctx context.Context, tableName string, filter Document, update Document) (int64, error)

	// DeleteOne deletes rows matching the filter.
	// Returns the count of deleted rows.
	DeleteOne(ctx context.Context, tableName string, filter Document) (int64, error)

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error

	// EnsureSchema idempotently creates the table with the given columns,
	// rendering the DDL in the backend's dialect.
	EnsureSchema(ctx context.Context, tableName string, columns []ColumnDef) error
}

// ColumnType is the backend-neutral type of a table column.
type ColumnType int

const (
	// ColumnID is a system-assigned auto-incrementing integer primary key.
	ColumnID ColumnType = iota
	// ColumnText is a non-null text column.
	ColumnText
	// ColumnBool is a non-null boolean column defaulting to false.
	ColumnBool
)

// ColumnDef describes one column of a table schema.
type ColumnDef struct {
	Name string
	Type ColumnType
}
