package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// Strategy describes how an entity is read in one schema generation: the
// tables and columns selected, an optional join condition and the decoder
// applied to each row.
type Strategy[T any] struct {
	Tables  string
	Columns string
	Join    string
	Decode  func(row *storage.Row) (T, error)
}

// Query returns the SELECT statement for the strategy.
func (s Strategy[T]) Query() string {
	query := "SELECT " + s.Columns + " FROM " + s.Tables
	if s.Join != "" {
		query += " WHERE " + s.Join
	}
	return query
}

// Mapper holds the strategies of one entity, keyed by schema generation.
type Mapper[T any] struct {
	Entity     string
	Strategies map[Version]Strategy[T]
}

// Strategy returns the strategy for v, or ErrUnsupportedVersion.
func (m Mapper[T]) Strategy(v Version) (Strategy[T], error) {
	s, ok := m.Strategies[v]
	if !ok {
		return s, fmt.Errorf("%w: no %s layout for %s", ErrUnsupportedVersion, m.Entity, v)
	}
	return s, nil
}

// Load queries every row of the entity and decodes them independently.
// A row that fails to decode is dropped: ErrSkip rows silently, others with
// a Diagnostic. Only query failures are returned as errors.
func (m Mapper[T]) Load(ctx context.Context, q storage.Querier, v Version) ([]T, []Diagnostic, error) {
	s, err := m.Strategy(v)
	if err != nil {
		return nil, nil, err
	}

	var (
		objects     []T
		diagnostics []Diagnostic
		n           int
	)
	err = q.Query(ctx, s.Query(), nil, func(row *storage.Row) error {
		object, err := s.Decode(row)
		switch {
		case err == nil:
			objects = append(objects, object)
		case errors.Is(err, ErrSkip):
		default:
			d := Diagnostic{Entity: m.Entity, Row: n, Err: err}
			if id := row.OptInt64(0); id != nil {
				d.ID = types.LrID(*id)
			}
			diagnostics = append(diagnostics, d)
		}
		n++
		return nil
	})
	if err != nil {
		return nil, diagnostics, err
	}
	return objects, diagnostics, nil
}

// decodeIdentity reads the id_local and id_global columns every LrObject
// table starts with.
func decodeIdentity(row *storage.Row) (types.LrID, string, error) {
	id, err := row.Int64(0)
	if err != nil {
		return 0, "", err
	}
	uuid, err := row.String(1)
	if err != nil {
		return 0, "", err
	}
	return types.LrID(id), uuid, nil
}

func optID(row *storage.Row, i int) types.LrID {
	if id := row.OptInt64(i); id != nil {
		return types.LrID(*id)
	}
	return 0
}

func optString(row *storage.Row, i int) string {
	if s := row.OptString(i); s != nil {
		return *s
	}
	return ""
}
