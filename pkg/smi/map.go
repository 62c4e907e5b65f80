package smi

import "github.com/ksz8863/ksz8863-go/pkg/register"

// State is the value of any SMI register, tagged with its address.
type State = register.State[Address, uint8]

// Map holds one word per SMI register. It implements Transport.
type Map = register.Map[Address, uint8]

// NewMap returns a Map with every register at its default.
func NewMap() *Map {
	return bank.NewMap()
}

// NewState returns the State of the register at a holding raw.
func NewState(a Address, raw uint8) State {
	return bank.NewState(a, raw)
}

// DefaultState returns the State of the register at a holding its default.
func DefaultState(a Address) State {
	return bank.DefaultState(a)
}

// Default returns register R with every field at its default.
func Default[R any, PR register.Ptr[R, uint8]]() R {
	return register.Default[R, PR, uint8]()
}

// StateOf returns r as a State.
func StateOf[R any, PR register.Ptr[R, uint8]](r R) State {
	return register.StateOf[R, PR, Address, uint8](r)
}

// Downcast returns s as register R. It fails with register.ErrInvalidAddress
// if s holds another register.
func Downcast[R any, PR register.Ptr[R, uint8]](s State) (R, error) {
	return register.Downcast[R, PR, Address, uint8](s)
}

// DowncastModify applies fn to the fields of s, which must hold register R.
func DowncastModify[R any, Wr any, PR register.Writable[R, uint8, Wr]](s *State, fn func(Wr)) error {
	return register.DowncastModify[R, Wr, PR, Address, uint8](s, fn)
}

// Get returns register R as held by m.
func Get[R any, PR register.Ptr[R, uint8]](m *Map) R {
	return register.Get[R, PR](m)
}

// Set stores r into m.
func Set[R any, PR register.Ptr[R, uint8]](m *Map, r R) {
	register.Set[R, PR](m, r)
}

// Update applies fn to register R as held by m.
func Update[R any, Wr any, PR register.Writable[R, uint8, Wr]](m *Map, fn func(Wr)) {
	register.Update[R, Wr, PR](m, fn)
}
