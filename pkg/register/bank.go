package register

import (
	"fmt"
	"slices"
)

// Bank is the closed set of register layouts reachable through one
// addressing tier. A is the tier's address type and W its word type.
type Bank[A Code, W Word] struct {
	name    string
	width   Width
	layouts []*Layout

	// slots maps an address to its index in layouts, plus one. Zero marks an
	// undocumented address.
	slots [256]uint16
}

// NewBank builds a bank from generated layouts. Layouts are kept in address
// order. NewBank panics if two layouts share an address or a layout's width
// differs from width or from W, since banks are only built from generated
// tables at package initialization.
func NewBank[A Code, W Word](name string, width Width, layouts ...*Layout) *Bank[A, W] {
	var zero W
	if uint16(^zero) != width.Mask() {
		panic(fmt.Sprintf("register: bank %s: word type does not hold %s registers", name, width))
	}

	b := &Bank[A, W]{
		name:    name,
		width:   width,
		layouts: slices.Clone(layouts),
	}
	slices.SortStableFunc(b.layouts, func(x, y *Layout) int {
		return int(x.Addr) - int(y.Addr)
	})
	for i, l := range b.layouts {
		if l.Width != width {
			panic(fmt.Sprintf("register: bank %s: %s is %s, want %s", name, l.Name, l.Width, width))
		}
		if b.slots[l.Addr] != 0 {
			panic(fmt.Sprintf("register: bank %s: %s and %s share address 0x%02x",
				name, b.layouts[b.slots[l.Addr]-1].Name, l.Name, l.Addr))
		}
		b.slots[l.Addr] = uint16(i + 1)
	}
	return b
}

// Name returns the bank name.
func (b *Bank[A, W]) Name() string { return b.name }

// Width returns the word width shared by every register of the bank.
func (b *Bank[A, W]) Width() Width { return b.width }

// Len returns the number of registers in the bank.
func (b *Bank[A, W]) Len() int { return len(b.layouts) }

// Parse validates a numeric code. It fails with ErrInvalidAddress for codes
// that name no register of the bank. For every valid code, uint8 of the
// result is the code again.
func (b *Bank[A, W]) Parse(code uint8) (A, error) {
	if b.slots[code] == 0 {
		return 0, fmt.Errorf("%w: %s 0x%02x", ErrInvalidAddress, b.name, code)
	}
	return A(code), nil
}

// Addresses returns every address of the bank in ascending order.
func (b *Bank[A, W]) Addresses() []A {
	out := make([]A, len(b.layouts))
	for i, l := range b.layouts {
		out[i] = A(l.Addr)
	}
	return out
}

// Layouts returns every layout of the bank in address order.
func (b *Bank[A, W]) Layouts() []*Layout {
	return slices.Clone(b.layouts)
}

// Layout returns the layout at a.
//
// Addresses are normally obtained from generated constants or Parse. Layout
// panics for an address forged by conversion from an undocumented code.
func (b *Bank[A, W]) Layout(a A) *Layout {
	return b.layouts[b.index(a)]
}

// Lookup returns the layout registered under name.
func (b *Bank[A, W]) Lookup(name string) (*Layout, bool) {
	for _, l := range b.layouts {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// NewState returns the state of the register at a holding raw.
func (b *Bank[A, W]) NewState(a A, raw W) State[A, W] {
	return State[A, W]{layout: b.Layout(a), raw: raw}
}

// DefaultState returns the state of the register at a with every field at
// its default.
func (b *Bank[A, W]) DefaultState(a A) State[A, W] {
	l := b.Layout(a)
	return State[A, W]{layout: l, raw: W(l.DefaultRaw())}
}

// NewMap returns a map holding the default state of every register.
func (b *Bank[A, W]) NewMap() *Map[A, W] {
	m := &Map[A, W]{
		bank:  b,
		words: make([]W, len(b.layouts)),
	}
	m.Reset()
	return m
}

func (b *Bank[A, W]) index(a A) int {
	i := b.slots[uint8(a)]
	if i == 0 {
		panic(fmt.Sprintf("register: bank %s has no register at 0x%02x", b.name, uint8(a)))
	}
	return int(i - 1)
}

// slotOf returns the index of l, which must be one of the bank's own layouts.
func (b *Bank[A, W]) slotOf(l *Layout) (int, bool) {
	if l == nil {
		return 0, false
	}
	i := b.slots[l.Addr]
	if i == 0 || b.layouts[i-1] != l {
		return 0, false
	}
	return int(i - 1), true
}
