package types

import (
	"fmt"

	"github.com/google/uuid"
)

// LrID is the local id of a catalog object.
type LrID int64

// LrObject is implemented by catalog objects that carry both ids.
type LrObject interface {
	// ID is the local id.
	ID() LrID
	// UUID is the global id. Lightroom doesn't seem to use it anywhere.
	UUID() string
}

// Validate checks that o has a positive local id and a well-formed UUID.
func Validate(o LrObject) error {
	if o.ID() <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, o.ID())
	}
	if _, err := uuid.Parse(o.UUID()); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidUUID, o.UUID(), err)
	}
	return nil
}
