package register

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Maps encode as an array of raw words in address order. Decoding requires a
// map obtained from Bank.NewMap, since the words carry no tag of their own.

var errUnboundMap = errors.New("register: decode into a map without bank")

var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("register: CBOR encoder: %v", err))
	}
}

// wide widens the words so that 8-bit maps encode as integers rather than a
// byte string.
func (m *Map[A, W]) wide() []uint16 {
	out := make([]uint16, len(m.words))
	for i, w := range m.words {
		out[i] = uint16(w)
	}
	return out
}

func (m *Map[A, W]) load(words []uint16) error {
	if m.bank == nil {
		return errUnboundMap
	}
	if len(words) != len(m.words) {
		return fmt.Errorf("%w: %s has %d registers, got %d words",
			ErrSnapshotLength, m.bank.name, len(m.words), len(words))
	}
	mask := m.bank.width.Mask()
	for i, w := range words {
		if w&^mask != 0 {
			return fmt.Errorf("register: word %d (0x%x) exceeds %s", i, w, m.bank.width)
		}
	}
	for i, w := range words {
		m.words[i] = W(w)
	}
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (m *Map[A, W]) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(m.wide())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *Map[A, W]) UnmarshalCBOR(data []byte) error {
	var words []uint16
	if err := cbor.Unmarshal(data, &words); err != nil {
		return fmt.Errorf("register: decode map: %w", err)
	}
	return m.load(words)
}

// MarshalJSON implements json.Marshaler.
func (m *Map[A, W]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wide())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map[A, W]) UnmarshalJSON(data []byte) error {
	var words []uint16
	if err := json.Unmarshal(data, &words); err != nil {
		return fmt.Errorf("register: decode map: %w", err)
	}
	return m.load(words)
}
