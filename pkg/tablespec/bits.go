package tablespec

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBits parses a bit position as written in tables: a single bit "5" or
// an inclusive range "0..7". Ranges are returned as written; ordering is
// checked by validation.
func ParseBits(s string) (lsb, msb uint8, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("missing bits")
	}
	lo, hi, isRange := strings.Cut(s, "..")
	if lsb, err = parseBit(lo); err != nil {
		return 0, 0, fmt.Errorf("invalid bits %q", s)
	}
	if !isRange {
		return lsb, lsb, nil
	}
	if msb, err = parseBit(strings.TrimPrefix(hi, "=")); err != nil {
		return 0, 0, fmt.Errorf("invalid bits %q", s)
	}
	return lsb, msb, nil
}

func parseBit(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}
