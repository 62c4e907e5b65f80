package miim

import "github.com/ksz8863/ksz8863-go/pkg/register"

// State is the value of any PHY register, tagged with its address.
type State = register.State[Address, uint16]

// Map holds one word per register of a single PHY. It implements Transport
// for any PHY address: the address is ignored.
type Map struct {
	*register.Map[Address, uint16]
}

// NewMap returns a Map with every register at its default.
func NewMap() *Map {
	return &Map{Map: bank.NewMap()}
}

// Read returns the word of register reg.
func (m *Map) Read(_ uint8, reg uint8) (uint16, error) {
	return m.Map.Read(reg)
}

// Write stores the word of register reg.
func (m *Map) Write(_ uint8, reg uint8, data uint16) error {
	return m.Map.Write(reg, data)
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	return &Map{Map: m.Map.Clone()}
}

// Equal reports whether m and other hold the same words.
func (m *Map) Equal(other *Map) bool {
	if other == nil {
		return false
	}
	return m.Map.Equal(other.Map)
}

// Diff returns the addresses whose words differ between m and other.
func (m *Map) Diff(other *Map) []Address {
	return m.Map.Diff(other.Map)
}

// NewState returns the State of the register at a holding raw.
func NewState(a Address, raw uint16) State {
	return bank.NewState(a, raw)
}

// DefaultState returns the State of the register at a holding its default.
func DefaultState(a Address) State {
	return bank.DefaultState(a)
}

// Default returns register R with every field at its default.
func Default[R any, PR register.Ptr[R, uint16]]() R {
	return register.Default[R, PR, uint16]()
}

// StateOf returns r as a State.
func StateOf[R any, PR register.Ptr[R, uint16]](r R) State {
	return register.StateOf[R, PR, Address, uint16](r)
}

// Downcast returns s as register R. It fails with register.ErrInvalidAddress
// if s holds another register.
func Downcast[R any, PR register.Ptr[R, uint16]](s State) (R, error) {
	return register.Downcast[R, PR, Address, uint16](s)
}

// DowncastModify applies fn to the fields of s, which must hold register R.
func DowncastModify[R any, Wr any, PR register.Writable[R, uint16, Wr]](s *State, fn func(Wr)) error {
	return register.DowncastModify[R, Wr, PR, Address, uint16](s, fn)
}

// Get returns register R as held by m.
func Get[R any, PR register.Ptr[R, uint16]](m *Map) R {
	return register.Get[R, PR](m.Map)
}

// Set stores r into m.
func Set[R any, PR register.Ptr[R, uint16]](m *Map, r R) {
	register.Set[R, PR](m.Map, r)
}

// Update applies fn to register R as held by m.
func Update[R any, Wr any, PR register.Writable[R, uint16, Wr]](m *Map, fn func(Wr)) {
	register.Update[R, Wr, PR](m.Map, fn)
}
