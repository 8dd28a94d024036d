package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/avator7/todoapi/internal/interfaces"
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL databases.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int           // MaxOpenConns is the maximum number of open connections to the database
	MaxIdleConns    int           // MaxIdleConns is the maximum number of idle connections to the database
	ConnMaxLifetime time.Duration // ConnMaxLifetime is the maximum amount of time a connection may be reused
}

func NewPostgresDatabaseClient(maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) interfaces.DBClient {
	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = DefaultMaxIdleConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = DefaultConnMaxLifetime
	}
	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)

	p.db = db
	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single row into a PostgreSQL table.
// 'document' is expected to be a map[string]interface{}.
// Returns the auto-assigned integer id of the new row.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (int64, error) {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("PostgreSQL InsertOne expects document to be map[string]interface{}")
	}
	if len(docMap) == 0 {
		return 0, fmt.Errorf("PostgreSQL InsertOne requires a non-empty document")
	}

	columns := make([]string, 0, len(docMap))
	placeholders := make([]string, 0, len(docMap))
	values := make([]interface{}, 0, len(docMap))

	i := 1
	for col, val := range docMap {
		columns = append(columns, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i))
		values = append(values, val)
		i++
	}

	// Table and column names are controlled by the repositories, not user input.
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201

	var insertedID int64
	if err := p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID); err != nil {
		return 0, err
	}
	return insertedID, nil
}

// FindOne retrieves a single row matching the filter and scans it into
// 'result', a pointer to a struct with `db` tags. An absent row leaves the
// struct zeroed and returns a nil error.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	whereString, whereValues, err := buildWhere(filter, 1)
	if err != nil {
		return fmt.Errorf("PostgreSQL FindOne: %w", err)
	}
	if whereString == "" {
		return fmt.Errorf("PostgreSQL FindOne requires a non-empty filter")
	}

	resultValue := reflect.ValueOf(result)
	if resultValue.Kind() != reflect.Ptr || resultValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("result must be a pointer to a struct")
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

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY id LIMIT 1",
		strings.Join(columns, ", "),
		tableName,
		whereString,
	) // #nosec G201

	row := p.db.QueryRowContext(ctx, query, whereValues...)
	err = row.Scan(fieldPointers...)
	if err == sql.ErrNoRows {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}
	return err
}

// FindMany retrieves rows matching the filter in insertion order, applying
// skip and limit. Each row is returned as a map[string]interface{}.
func (p *PostgresDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document, skip, limit int64) ([]interfaces.Document, error) {
	whereString, whereValues, err := buildWhere(filter, 1)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL FindMany: %w", err)
	}
	if whereString != "" {
		whereString = " WHERE " + whereString
	}

	query := fmt.Sprintf("SELECT * FROM %s%s ORDER BY id LIMIT $%d OFFSET $%d",
		tableName, whereString, len(whereValues)+1, len(whereValues)+2) // #nosec G201
	args := append(whereValues, limit, skip)

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

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

	return results, rows.Err()
}

// UpdateOne updates rows matching the filter with the given column values.
func (p *PostgresDatabaseClient) UpdateOne(ctx context.Context, tableName string, filter interfaces.Document, update interfaces.Document) (int64, error) {
	updateMap, ok := update.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("PostgreSQL UpdateOne expects update to be map[string]interface{}")
	}
	if len(updateMap) == 0 {
		return 0, fmt.Errorf("PostgreSQL UpdateOne requires a non-empty update")
	}

	setClauses := make([]string, 0, len(updateMap))
	values := make([]interface{}, 0, len(updateMap))
	paramCount := 1
	for col, val := range updateMap {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		values = append(values, val)
		paramCount++
	}

	whereString, whereValues, err := buildWhere(filter, paramCount)
	if err != nil {
		return 0, fmt.Errorf("PostgreSQL UpdateOne: %w", err)
	}
	if whereString == "" {
		return 0, fmt.Errorf("PostgreSQL UpdateOne requires a non-empty filter")
	}
	values = append(values, whereValues...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		tableName,
		strings.Join(setClauses, ", "),
		whereString,
	) // #nosec G201

	res, err := p.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOne deletes rows matching the filter.
func (p *PostgresDatabaseClient) DeleteOne(ctx context.Context, tableName string, filter interfaces.Document) (int64, error) {
	whereString, whereValues, err := buildWhere(filter, 1)
	if err != nil {
		return 0, fmt.Errorf("PostgreSQL DeleteOne: %w", err)
	}
	if whereString == "" {
		return 0, fmt.Errorf("PostgreSQL DeleteOne requires a non-empty filter")
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", tableName, whereString) // #nosec G201

	res, err := p.db.ExecContext(ctx, query, whereValues...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping checks the health of the PostgreSQL connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	return p.db.PingContext(ctx)
}

// EnsureSchema idempotently creates the table with the given columns,
// rendered in PostgreSQL's dialect.
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, columns []interfaces.ColumnDef) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		switch col.Type {
		case interfaces.ColumnID:
			defs = append(defs, col.Name+" BIGSERIAL PRIMARY KEY")
		case interfaces.ColumnText:
			defs = append(defs, col.Name+" TEXT NOT NULL")
		case interfaces.ColumnBool:
			defs = append(defs, col.Name+" BOOLEAN NOT NULL DEFAULT FALSE")
		default:
			return fmt.Errorf("unsupported column type for %s", col.Name)
		}
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(defs, ", ")) // #nosec G201
	_, err := p.db.ExecContext(ctx, stmt)
	return err
}

// buildWhere renders a map filter into a "col = $n AND ..." clause,
// numbering parameters from 'start'.
func buildWhere(filter interfaces.Document, start int) (string, []interface{}, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return "", nil, fmt.Errorf("filter must be map[string]interface{}")
	}

	clauses := make([]string, 0, len(filterMap))
	values := make([]interface{}, 0, len(filterMap))
	paramCount := start
	for col, val := range filterMap {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, paramCount))
		values = append(values, val)
		paramCount++
	}
	return strings.Join(clauses, " AND "), values, nil
}
