package miim

import (
	"fmt"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// Address is the address of a modelled PHY register. The constants in
// registers_gen.go are the valid values; ParseAddress validates raw codes.
type Address uint8

var bank = register.NewBank[Address, uint16]("miim", register.Width16, layouts...)

// DefaultPHYAddrs are the PHY addresses of ports 1 and 2 after reset. The
// base address is configurable through the SMI register Gc13.
var DefaultPHYAddrs = [2]uint8{0x01, 0x02}

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

// Bank returns the register bank of a PHY.
func Bank() *register.Bank[Address, uint16] {
	return bank
}

// Layout returns the layout of the register at a.
func (a Address) Layout() *register.Layout {
	return bank.Layout(a)
}

func (a Address) String() string {
	if _, err := bank.Parse(uint8(a)); err != nil {
		return fmt.Sprintf("0x%02x", uint8(a))
	}
	return bank.Layout(a).Name
}
