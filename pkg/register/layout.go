package register

import (
	"fmt"
	"strings"
)

// Field describes a named bit or inclusive bit range within a register.
type Field struct {
	// Name is the field name as it appears in the layout table.
	Name string

	// Lsb and Msb bound the field, inclusive. They are equal for a
	// single-bit field.
	Lsb uint8
	Msb uint8

	// Access defines whether the field can be read, written, or both.
	Access Access

	// Default is the power-on value of the field, right-aligned.
	Default uint16

	// HasDefault is false when the table leaves the default unspecified.
	// Default is then 0.
	HasDefault bool
}

// Bits returns the number of bits the field spans.
func (f *Field) Bits() uint8 { return f.Msb - f.Lsb + 1 }

// IsBit reports whether the field is a single bit.
func (f *Field) IsBit() bool { return f.Lsb == f.Msb }

// Mask returns the field's bits in register position.
func (f *Field) Mask() uint16 {
	return uint16((uint32(1)<<f.Bits() - 1) << f.Lsb)
}

// Get extracts the field value from raw, right-aligned.
func (f *Field) Get(raw uint16) uint16 {
	return (raw & f.Mask()) >> f.Lsb
}

// Put stores v into the field's bits of raw and returns the result. Bits of
// v beyond the field width are discarded; bits of raw outside the field are
// left as they were.
func (f *Field) Put(raw, v uint16) uint16 {
	m := f.Mask()
	return raw&^m | (v<<f.Lsb)&m
}

// Range returns the bit position as written in layout tables: "5" or "0..7".
func (f *Field) Range() string {
	if f.IsBit() {
		return fmt.Sprintf("%d", f.Lsb)
	}
	return fmt.Sprintf("%d..%d", f.Lsb, f.Msb)
}

// Layout is the immutable description of one register.
type Layout struct {
	// Name is the register name.
	Name string

	// Addr is the register's address within its bank.
	Addr uint8

	// Width is the register word width.
	Width Width

	// Doc is a short description of the register.
	Doc string

	// Fields lists the register's fields in table order.
	Fields []Field
}

// DefaultRaw returns the register word with every field at its default,
// whatever the field's access mode.
func (l *Layout) DefaultRaw() uint16 {
	var raw uint16
	for i := range l.Fields {
		raw = l.Fields[i].Put(raw, l.Fields[i].Default)
	}
	return raw
}

// ResetRaw returns raw with every writable field that declares a default
// restored to it. Read-only fields and fields without a default keep the
// value they have in raw.
func (l *Layout) ResetRaw(raw uint16) uint16 {
	for i := range l.Fields {
		f := &l.Fields[i]
		if f.Access.CanWrite() && f.HasDefault {
			raw = f.Put(raw, f.Default)
		}
	}
	return raw
}

// WritableMask returns the bits covered by writable fields.
func (l *Layout) WritableMask() uint16 {
	var m uint16
	for i := range l.Fields {
		if l.Fields[i].Access.CanWrite() {
			m |= l.Fields[i].Mask()
		}
	}
	return m
}

// Field looks up a field by name.
func (l *Layout) Field(name string) (*Field, bool) {
	for i := range l.Fields {
		if l.Fields[i].Name == name {
			return &l.Fields[i], true
		}
	}
	return nil, false
}

// FieldValue is one decoded field of a register word.
type FieldValue struct {
	Name   string
	Access Access
	Bit    bool
	Value  uint16
}

// Decode returns the value of every readable field of raw in table order.
func (l *Layout) Decode(raw uint16) []FieldValue {
	out := make([]FieldValue, 0, len(l.Fields))
	for i := range l.Fields {
		f := &l.Fields[i]
		if !f.Access.CanRead() {
			continue
		}
		out = append(out, FieldValue{
			Name:   f.Name,
			Access: f.Access,
			Bit:    f.IsBit(),
			Value:  f.Get(raw),
		})
	}
	return out
}

// Format renders raw as "Name{field: value, ...}" listing readable fields.
// Single bits print as true/false, ranges in hex.
func (l *Layout) Format(raw uint16) string {
	var b strings.Builder
	b.WriteString(l.Name)
	b.WriteByte('{')
	for i, fv := range l.Decode(raw) {
		if i > 0 {
			b.WriteString(", ")
		}
		if fv.Bit {
			fmt.Fprintf(&b, "%s: %t", fv.Name, fv.Value != 0)
		} else {
			fmt.Fprintf(&b, "%s: %#x", fv.Name, fv.Value)
		}
	}
	b.WriteByte('}')
	return b.String()
}
