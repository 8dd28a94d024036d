package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/avator7/todoapi/internal/interfaces"
)

// SqliteDatabaseClient implements the DBClient interface for SQLite databases
// using the modernc.org/sqlite driver. The DSN is a file path, or ":memory:"
// for an in-memory database.
type SqliteDatabaseClient struct {
	db *sql.DB
}

func NewSqliteDatabaseClient() interfaces.DBClient {
	return &SqliteDatabaseClient{}
}

// Connect opens the SQLite database and configures it for use.
func (s *SqliteDatabaseClient) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// WAL improves concurrent read performance for file databases.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite permits a single writer; a pool of one avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	s.db = db
	return nil
}

// Disconnect closes the SQLite database connection.
func (s *SqliteDatabaseClient) Disconnect(ctx context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InsertOne inserts a single row into a SQLite table.
// 'document' is expected to be a map[string]interface{}.
// Returns the auto-assigned integer id of the new row.
func (s *SqliteDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (int64, error) {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("SQLite InsertOne expects document to be map[string]interface{}")
	}
	if len(docMap) == 0 {
		return 0, fmt.Errorf("SQLite InsertOne requires a non-empty document")
	}

	columns := make([]string, 0, len(docMap))
	placeholders := make([]string, 0, len(docMap))
	values := make([]interface{}, 0, len(docMap))
	for col, val := range docMap {
		columns = append(columns, col)
		placeholders = append(placeholders, "?")
		values = append(values, val)
	}

	// Table and column names are controlled by the repositories, not user input.
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201

	res, err := s.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FindOne retrieves a single row matching the filter and scans it into
// 'result', a pointer to a struct with `db` tags. An absent row leaves the
// struct zeroed and returns a nil error.
func (s *SqliteDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	whereString, whereValues, err := buildWhere(filter)
	if err != nil {
		return fmt.Errorf("SQLite FindOne: %w", err)
	}
	if whereString == "" {
		return fmt.Errorf("SQLite FindOne requires a non-empty filter")
	}

	columns, fieldPointers, elem, err := structColumns(result)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY id LIMIT 1",
		strings.Join(columns, ", "),
		tableName,
		whereString,
	) // #nosec G201

	row := s.db.QueryRowContext(ctx, query, whereValues...)
	err = row.Scan(fieldPointers...)
	if err == sql.ErrNoRows {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}
	return err
}

// FindMany retrieves rows matching the filter in insertion order, applying
// skip and limit. Each row is returned as a map[string]interface{} with
// []byte values converted to strings.
func (s *SqliteDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document, skip, limit int64) ([]interfaces.Document, error) {
	whereString, whereValues, err := buildWhere(filter)
	if err != nil {
		return nil, fmt.Errorf("SQLite FindMany: %w", err)
	}
	if whereString != "" {
		whereString = " WHERE " + whereString
	}

	query := fmt.Sprintf("SELECT * FROM %s%s ORDER BY id LIMIT ? OFFSET ?", tableName, whereString) // #nosec G201
	args := append(whereValues, limit, skip)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	results, err := scanRowMaps(rows)
	if err != nil {
		return nil, err
	}
	return results, rows.Err()
}

// UpdateOne updates rows matching the filter with the given column values.
func (s *SqliteDatabaseClient) UpdateOne(ctx context.Context, tableName string, filter interfaces.Document, update interfaces.Document) (int64, error) {
	updateMap, ok := update.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("SQLite UpdateOne expects update to be map[string]interface{}")
	}
	if len(updateMap) == 0 {
		return 0, fmt.Errorf("SQLite UpdateOne requires a non-empty update")
	}

	setClauses := make([]string, 0, len(updateMap))
	values := make([]interface{}, 0, len(updateMap))
	for col, val := range updateMap {
		setClauses = append(setClauses, col+" = ?")
		values = append(values, val)
	}

	whereString, whereValues, err := buildWhere(filter)
	if err != nil {
		return 0, fmt.Errorf("SQLite UpdateOne: %w", err)
	}
	if whereString == "" {
		return 0, fmt.Errorf("SQLite UpdateOne requires a non-empty filter")
	}
	values = append(values, whereValues...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		tableName,
		strings.Join(setClauses, ", "),
		whereString,
	) // #nosec G201

	res, err := s.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOne deletes rows matching the filter.
func (s *SqliteDatabaseClient) DeleteOne(ctx context.Context, tableName string, filter interfaces.Document) (int64, error) {
	whereString, whereValues, err := buildWhere(filter)
	if err != nil {
		return 0, fmt.Errorf("SQLite DeleteOne: %w", err)
	}
	if whereString == "" {
		return 0, fmt.Errorf("SQLite DeleteOne requires a non-empty filter")
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", tableName, whereString) // #nosec G201

	res, err := s.db.ExecContext(ctx, query, whereValues...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping checks the health of the SQLite connection.
func (s *SqliteDatabaseClient) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("SqliteDatabaseClient is not connected to a database")
	}
	return s.db.PingContext(ctx)
}

// EnsureSchema idempotently creates the table with the given columns,
// rendered in SQLite's dialect.
func (s *SqliteDatabaseClient) EnsureSchema(ctx context.Context, tableName string, columns []interfaces.ColumnDef) error {
	if s.db == nil {
		return fmt.Errorf("SqliteDatabaseClient is not connected to a database")
	}

	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		switch col.Type {
		case interfaces.ColumnID:
			defs = append(defs, col.Name+" INTEGER PRIMARY KEY AUTOINCREMENT")
		case interfaces.ColumnText:
			defs = append(defs, col.Name+" TEXT NOT NULL")
		case interfaces.ColumnBool:
			defs = append(defs, col.Name+" BOOLEAN NOT NULL DEFAULT 0")
		default:
			return fmt.Errorf("unsupported column type for %s", col.Name)
		}
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(defs, ", ")) // #nosec G201
	_, err := s.db.ExecContext(ctx, stmt)
	return err
}

// buildWhere renders a map filter into a "col = ? AND ..." clause.
func buildWhere(filter interfaces.Document) (string, []interface{}, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return "", nil, fmt.Errorf("filter must be map[string]interface{}")
	}

	clauses := make([]string, 0, len(filterMap))
	values := make([]interface{}, 0, len(filterMap))
	for col, val := range filterMap {
		clauses = append(clauses, col+" = ?")
		values = append(values, val)
	}
	return strings.Join(clauses, " AND "), values, nil
}

// structColumns extracts column names (from `db` tags, falling back to the
// lowercased field name) and scan targets from a pointer-to-struct result.
func structColumns(result interfaces.Document) ([]string, []interface{}, reflect.Value, error) {
	resultValue := reflect.ValueOf(result)
	if resultValue.Kind() != reflect.Ptr || resultValue.Elem().Kind() != reflect.Struct {
		return nil, nil, reflect.Value{}, fmt.Errorf("result must be a pointer to a struct")
	}
	elem := resultValue.Elem()
	numFields := elem.NumField()

	columns := make([]string, numFields)
	fieldPointers := make([]interface{}, numFields)
	for i := 0; i < numFields; i++ {
		field := elem.Type().Field(i)
		name := field.Tag.Get("db")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		columns[i] = name
		fieldPointers[i] = elem.Field(i).Addr().Interface()
	}
	return columns, fieldPointers, elem, nil
}

// scanRowMaps converts sql rows into generic row maps.
func scanRowMaps(rows *sql.Rows) ([]interfaces.Document, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []interfaces.Document
	for rows.Next() {
		columnPointers := make([]interface{}, len(columns))
		columnValues := make([]interface{}, len(columns))
		for i := range columns {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		rowMap := make(map[string]interface{})
		for i, colName := range columns {
			val := columnValues[i]
			if b, ok := val.([]byte); ok {
				rowMap[colName] = string(b)
			} else {
				rowMap[colName] = val
			}
		}
		results = append(results, rowMap)
	}
	return results, nil
}
