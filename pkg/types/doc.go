// Package types provides the identity primitives shared by every object
// loaded from a Lightroom catalog.
//
// Every catalog object has a local id, LrID, used by other tables to refer to
// it. Most also carry a global id, a UUID string:
//
//	var o types.LrObject = keyword
//	fmt.Println(o.ID(), o.UUID())
//
// Local ids are unique within a table. They look unique across tables too,
// but nothing guarantees it.
//
// # Validation
//
// Validate checks an object's identity:
//
//	if err := types.Validate(o); err != nil {
//	    // ErrInvalidID or ErrInvalidUUID
//	}
package types
