package log

import (
	"fmt"
	"strings"
	"time"
)

// Event is one primitive transport operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation started (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one traced transport (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Tier is the addressing tier the operation went through.
	Tier Tier `cbor:"3,keyasint"`

	// Op is the primitive performed.
	Op Op `cbor:"4,keyasint"`

	// Scope is the PHY address for scoped operations.
	Scope *uint8 `cbor:"5,keyasint,omitempty"`

	// Addr is the register address within the tier.
	Addr uint8 `cbor:"6,keyasint"`

	// Register is the register name, empty for undocumented addresses.
	Register string `cbor:"7,keyasint,omitempty"`

	// Value is the word read or written. It is zero for failed reads.
	Value uint16 `cbor:"8,keyasint"`

	// Duration is the time the transport took.
	Duration time.Duration `cbor:"9,keyasint,omitempty"`

	// Error is the transport error text, if any.
	Error string `cbor:"10,keyasint,omitempty"`
}

// Failed reports whether the transport returned an error.
func (e Event) Failed() bool { return e.Error != "" }

// Tier identifies an addressing tier.
type Tier uint8

const (
	// TierSMI is the flat, 8-bit register tier.
	TierSMI Tier = 0
	// TierMIIM is the PHY-scoped, 16-bit register tier.
	TierMIIM Tier = 1
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierSMI:
		return "SMI"
	case TierMIIM:
		return "MIIM"
	default:
		return "UNKNOWN"
	}
}

// ParseTier parses a tier name, case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "smi":
		return TierSMI, nil
	case "miim":
		return TierMIIM, nil
	default:
		return 0, fmt.Errorf("invalid tier: %s (must be smi or miim)", s)
	}
}

// Op identifies a transport primitive.
type Op uint8

const (
	// OpRead is a register read.
	OpRead Op = 0
	// OpWrite is a register write.
	OpWrite Op = 1
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// ParseOp parses an operation name, case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(s) {
	case "read", "r":
		return OpRead, nil
	case "write", "w":
		return OpWrite, nil
	default:
		return 0, fmt.Errorf("invalid op: %s (must be read or write)", s)
	}
}

// Location renders the address of the event: "0x03" for direct access,
// "phy1/0x1f" for scoped access.
func (e Event) Location() string {
	if e.Scope != nil {
		return fmt.Sprintf("phy%d/0x%02x", *e.Scope, e.Addr)
	}
	return fmt.Sprintf("0x%02x", e.Addr)
}
