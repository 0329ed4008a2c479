// Package storage opens a Lightroom catalog read-only and streams query
// results as rows with typed column access.
//
// The catalog is a plain SQLite file. Which driver is linked depends on the
// build tags, see DriverName.
//
//	db, err := storage.Open(ctx, "/path/to/catalog.lrcat")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	err = db.Query(ctx, "SELECT id_local, name FROM AgLibraryKeyword", nil,
//	    func(row *storage.Row) error {
//	        id, err := row.Int64(0)
//	        ...
//	    })
package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested variable doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrNull is returned by required column getters on NULL
	ErrNull = errors.New("column is NULL")
	// ErrNoColumn is returned when a column index or name is out of the row
	ErrNoColumn = errors.New("no such column")
)

// Querier runs a query and hands every result row to fn. Iteration stops at
// the first error returned by fn.
type Querier interface {
	Query(ctx context.Context, query string, args []any, fn func(*Row) error) error
}

// SQLError wraps a driver failure with the operation and query involved.
type SQLError struct {
	Op    string
	Query string
	Err   error
}

func (e *SQLError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("sql %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sql %s %q: %v", e.Op, e.Query, e.Err)
}

func (e *SQLError) Unwrap() error {
	return e.Err
}

// ColumnTypeError reports a value that cannot be read as the requested type.
type ColumnTypeError struct {
	Column string
	Want   string
	Got    any
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("column %s: cannot read %T as %s", e.Column, e.Got, e.Want)
}
