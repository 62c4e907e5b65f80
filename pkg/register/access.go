package register

import (
	"fmt"
	"strings"
)

// Width is the size of a register word in bits.
type Width uint8

const (
	// Width8 is an 8-bit register word.
	Width8 Width = 8

	// Width16 is a 16-bit register word.
	Width16 Width = 16
)

// Valid reports whether w is a supported word width.
func (w Width) Valid() bool { return w == Width8 || w == Width16 }

// Mask returns a word with every bit of the width set.
func (w Width) Mask() uint16 {
	switch w {
	case Width8:
		return 0xFF
	case Width16:
		return 0xFFFF
	default:
		return 0
	}
}

// String returns the width as "8-bit" or "16-bit".
func (w Width) String() string {
	return fmt.Sprintf("%d-bit", uint8(w))
}

// Access flags for fields.
type Access uint8

const (
	// AccessRead allows reading the field.
	AccessRead Access = 1 << iota

	// AccessWrite allows writing the field.
	AccessWrite

	// AccessReadWrite allows both.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access flags as "R", "W" or "RW".
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if s == "" {
		return "-"
	}
	return s
}

// ParseAccess parses the access notation used by layout tables. Both the
// datasheet form ("R", "W", "RW") and the long form ("readOnly",
// "writeOnly", "readWrite") are accepted.
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "ro", "readonly":
		return AccessRead, nil
	case "w", "wo", "writeonly":
		return AccessWrite, nil
	case "rw", "readwrite":
		return AccessReadWrite, nil
	default:
		return 0, fmt.Errorf("unknown access mode %q", s)
	}
}
