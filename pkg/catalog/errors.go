package catalog

import (
	"errors"
	"fmt"

	"github.com/lrcat/lrcat-go/pkg/types"
)

var (
	// ErrSkip is returned by a row decoder for rows that are not this
	// entity in this schema generation. Skipped rows are not diagnostics.
	ErrSkip = errors.New("row skipped")
	// ErrUnsupportedVersion is returned when no query plan exists for the
	// catalog's schema generation.
	ErrUnsupportedVersion = errors.New("unsupported catalog version")
	// ErrNotOpen is returned by loaders called before Open.
	ErrNotOpen = errors.New("catalog not open")
)

// Diagnostic records a row dropped while loading an entity collection.
type Diagnostic struct {
	Entity string
	// Row is the 0-based position of the row in the query result.
	Row int
	// ID is the local id when it could be read, 0 otherwise.
	ID  types.LrID
	Err error
}

func (d Diagnostic) String() string {
	if d.ID != 0 {
		return fmt.Sprintf("%s row %d (id %d): %v", d.Entity, d.Row, d.ID, d.Err)
	}
	return fmt.Sprintf("%s row %d: %v", d.Entity, d.Row, d.Err)
}
