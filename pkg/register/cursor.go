package register

// BitR reads a single-bit field.
type BitR struct {
	v bool
}

// ReadBit returns a read cursor over the single-bit field f of raw.
func ReadBit[W Word](raw W, f *Field) BitR {
	return BitR{v: f.Get(uint16(raw)) != 0}
}

// Bit returns the value of the field as a raw bit.
func (b BitR) Bit() bool { return b.v }

// IsSet returns true if the bit is set (1).
func (b BitR) IsSet() bool { return b.v }

// IsClear returns true if the bit is clear (0).
func (b BitR) IsClear() bool { return !b.v }

// BitsR reads a field spanning several bits.
type BitsR[W Word] struct {
	v W
}

// ReadBits returns a read cursor over the multi-bit field f of raw.
func ReadBits[W Word](raw W, f *Field) BitsR[W] {
	return BitsR[W]{v: W(f.Get(uint16(raw)))}
}

// Bits returns the value of the field, right-aligned.
func (b BitsR[W]) Bits() W { return b.v }

// BitW writes a single-bit field of a register held in memory. Every method
// returns the parent writer so assignments can be chained.
type BitW[W Word, P any] struct {
	raw    *W
	f      *Field
	parent P
}

// WriteBit returns a write cursor over the single-bit field f of *raw.
func WriteBit[W Word, P any](raw *W, f *Field, parent P) BitW[W, P] {
	return BitW[W, P]{raw: raw, f: f, parent: parent}
}

// Bit stores the field as a raw bit, where true is 1.
func (c BitW[W, P]) Bit(v bool) P {
	var b uint16
	if v {
		b = 1
	}
	*c.raw = W(c.f.Put(uint16(*c.raw), b))
	return c.parent
}

// Set sets the field bit (to 1).
func (c BitW[W, P]) Set() P { return c.Bit(true) }

// Clear clears the field bit (to 0).
func (c BitW[W, P]) Clear() P { return c.Bit(false) }

// ResettableBitW is a BitW over a field with a declared default.
type ResettableBitW[W Word, P any] struct {
	BitW[W, P]
}

// WriteResettableBit returns a write cursor over the single-bit field f of
// *raw. f must carry a default.
func WriteResettableBit[W Word, P any](raw *W, f *Field, parent P) ResettableBitW[W, P] {
	return ResettableBitW[W, P]{BitW[W, P]{raw: raw, f: f, parent: parent}}
}

// Reset stores the field's default. The rest of the register is untouched.
func (c ResettableBitW[W, P]) Reset() P { return c.Bit(c.f.Default != 0) }

// BitsW writes a field spanning several bits of a register held in memory.
type BitsW[W Word, P any] struct {
	raw    *W
	f      *Field
	parent P
}

// WriteBits returns a write cursor over the multi-bit field f of *raw.
func WriteBits[W Word, P any](raw *W, f *Field, parent P) BitsW[W, P] {
	return BitsW[W, P]{raw: raw, f: f, parent: parent}
}

// Bits stores v, right-aligned, into the field. Bits of v beyond the field
// width are discarded.
func (c BitsW[W, P]) Bits(v W) P {
	*c.raw = W(c.f.Put(uint16(*c.raw), uint16(v)))
	return c.parent
}

// ResettableBitsW is a BitsW over a field with a declared default.
type ResettableBitsW[W Word, P any] struct {
	BitsW[W, P]
}

// WriteResettableBits returns a write cursor over the multi-bit field f of
// *raw. f must carry a default.
func WriteResettableBits[W Word, P any](raw *W, f *Field, parent P) ResettableBitsW[W, P] {
	return ResettableBitsW[W, P]{BitsW[W, P]{raw: raw, f: f, parent: parent}}
}

// Reset stores the field's default. The rest of the register is untouched.
func (c ResettableBitsW[W, P]) Reset() P {
	*c.raw = W(c.f.Put(uint16(*c.raw), c.f.Default))
	return c.parent
}
