package smi

import (
	"fmt"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// Address is the address of a modelled SMI register. The constants in
// registers_gen.go are the valid values; ParseAddress validates raw codes.
type Address uint8

var bank = register.NewBank[Address, uint8]("smi", register.Width8, layouts...)

// ParseAddress returns the Address of the register at code. It fails with
// register.ErrInvalidAddress if no modelled register lives there.
func ParseAddress(code uint8) (Address, error) {
	return bank.Parse(code)
}

// Addresses returns every modelled address in ascending order.
func Addresses() []Address {
	return bank.Addresses()
}

// Lookup returns the address of the register called name.
func Lookup(name string) (Address, bool) {
	l, ok := bank.Lookup(name)
	if !ok {
		return 0, false
	}
	return Address(l.Addr), true
}

// Bank returns the register bank of the tier.
func Bank() *register.Bank[Address, uint8] {
	return bank
}

// Layout returns the layout of the register at a.
func (a Address) Layout() *register.Layout {
	return bank.Layout(a)
}

// String returns the register name, or the code in hex for an address no
// register lives at.
func (a Address) String() string {
	if _, err := bank.Parse(uint8(a)); err != nil {
		return fmt.Sprintf("0x%02x", uint8(a))
	}
	return bank.Layout(a).Name
}
