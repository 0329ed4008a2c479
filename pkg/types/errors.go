package types

import "errors"

// Identity errors reported by Validate
var (
	ErrInvalidID   = errors.New("invalid local id")
	ErrInvalidUUID = errors.New("invalid global id")
)
