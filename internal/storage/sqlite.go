package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// DB is a read-only connection to a catalog file.
type DB struct {
	db   *sql.DB
	path string
}

var uriEscaper = strings.NewReplacer("%", "%25", " ", "%20", "?", "%3f", "#", "%23")

// dsn builds a read-only URI for path.
func dsn(path string) string {
	return "file:" + uriEscaper.Replace(path) + "?mode=ro"
}

// openDatabase opens a SQLite database read-only with a single connection.
func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, err
	}

	// One connection: the catalog is read sequentially by a single owner.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// sql.Open is lazy, make sure the file is really there.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Open opens the catalog at path read-only.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := openDatabase(ctx, path)
	if err != nil {
		return nil, &SQLError{Op: "open", Query: path, Err: err}
	}
	return &DB{db: db, path: path}, nil
}

// Path returns the file the connection was opened on.
func (d *DB) Path() string {
	return d.path
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// Query runs query with args and calls fn for each row, in order.
func (d *DB) Query(ctx context.Context, query string, args []any, fn func(*Row) error) error {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return &SQLError{Op: "query", Query: query, Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return &SQLError{Op: "columns", Query: query, Err: err}
	}

	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return &SQLError{Op: "scan", Query: query, Err: err}
		}
		if err := fn(NewRow(columns, values)); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return &SQLError{Op: "query", Query: query, Err: err}
	}
	return nil
}

const variableQuery = "SELECT value FROM Adobe_variablesTable WHERE name = ?"

// Variable reads a catalog-level variable. The returned row has a single
// "value" column. ErrNotFound is returned when the variable is missing.
func (d *DB) Variable(ctx context.Context, name string) (*Row, error) {
	var found *Row
	err := d.Query(ctx, variableQuery, []any{name}, func(row *Row) error {
		found = row
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

var errStop = errors.New("stop")
