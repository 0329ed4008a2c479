package storage

import (
	"fmt"
	"math"
	"time"
)

// Row is one result row. Values are kept as the driver returned them and
// converted on access.
type Row struct {
	columns []string
	values  []any
}

// NewRow builds a row from column names and driver values.
func NewRow(columns []string, values []any) *Row {
	return &Row{columns: columns, values: values}
}

// Columns returns the column names of the row.
func (r *Row) Columns() []string {
	return r.columns
}

// Index returns the position of the named column.
func (r *Row) Index(name string) (int, error) {
	for i, c := range r.columns {
		if c == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNoColumn, name)
}

// IsNull reports whether column i is NULL. Out of range columns are NULL.
func (r *Row) IsNull(i int) bool {
	return i < 0 || i >= len(r.values) || r.values[i] == nil
}

func (r *Row) get(i int) (any, error) {
	if i < 0 || i >= len(r.values) {
		return nil, fmt.Errorf("%w: index %d", ErrNoColumn, i)
	}
	if r.values[i] == nil {
		return nil, fmt.Errorf("%w: %s", ErrNull, r.columns[i])
	}
	return r.values[i], nil
}

// Int64 reads column i as an integer. Integral floats are accepted since
// the catalog stores some ids as REAL.
func (r *Row) Int64(i int) (int64, error) {
	v, err := r.get(i)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), nil
		}
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, &ColumnTypeError{Column: r.columns[i], Want: "int64", Got: v}
}

// Float64 reads column i as a floating point number.
func (r *Row) Float64(i int) (float64, error) {
	v, err := r.get(i)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, &ColumnTypeError{Column: r.columns[i], Want: "float64", Got: v}
}

// String reads column i as text.
func (r *Row) String(i int) (string, error) {
	v, err := r.get(i)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case time.Time:
		return s.Format(time.RFC3339Nano), nil
	}
	return "", &ColumnTypeError{Column: r.columns[i], Want: "string", Got: v}
}

// Bool reads column i as a boolean: any non-zero number is true.
func (r *Row) Bool(i int) (bool, error) {
	v, err := r.get(i)
	if err != nil {
		return false, err
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		return b != 0, nil
	case float64:
		return b != 0, nil
	}
	return false, &ColumnTypeError{Column: r.columns[i], Want: "bool", Got: v}
}

// OptInt64 returns nil when column i is NULL or not an integer.
func (r *Row) OptInt64(i int) *int64 {
	n, err := r.Int64(i)
	if err != nil {
		return nil
	}
	return &n
}

// OptFloat64 returns nil when column i is NULL or not a number.
func (r *Row) OptFloat64(i int) *float64 {
	f, err := r.Float64(i)
	if err != nil {
		return nil
	}
	return &f
}

// OptString returns nil when column i is NULL or not text.
func (r *Row) OptString(i int) *string {
	s, err := r.String(i)
	if err != nil {
		return nil
	}
	return &s
}
