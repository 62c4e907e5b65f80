package register

import "errors"

// Engine errors.
var (
	// ErrInvalidAddress is returned for a numeric code that names no register
	// of a bank, and for a downcast to a register type that does not match the
	// tag of a State.
	ErrInvalidAddress = errors.New("invalid register address")

	// ErrSnapshotLength is returned when a serialized map does not carry
	// exactly one word per register.
	ErrSnapshotLength = errors.New("snapshot length mismatch")
)
