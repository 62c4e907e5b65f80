package register

import (
	"fmt"
	"slices"
)

// Map holds the state of every register of a bank. It is always fully
// populated and a slot can only ever hold a state tagged with the slot's own
// layout.
//
// Map also serves as an in-memory direct-tier transport through Read and
// Write. It performs no locking.
type Map[A Code, W Word] struct {
	bank  *Bank[A, W]
	words []W
}

// Bank returns the bank the map covers.
func (m *Map[A, W]) Bank() *Bank[A, W] { return m.bank }

// Reset restores every register to its default.
func (m *Map[A, W]) Reset() {
	for i, l := range m.bank.layouts {
		m.words[i] = W(l.DefaultRaw())
	}
}

// State returns the state held at a.
func (m *Map[A, W]) State(a A) State[A, W] {
	i := m.bank.index(a)
	return State[A, W]{layout: m.bank.layouts[i], raw: m.words[i]}
}

// SetState stores s in the slot named by its own tag.
func (m *Map[A, W]) SetState(s State[A, W]) error {
	i, ok := m.bank.slotOf(s.layout)
	if !ok {
		return fmt.Errorf("%w: %s does not belong to %s", ErrInvalidAddress, s.name(), m.bank.name)
	}
	m.words[i] = s.raw
	return nil
}

// SetStateAt stores s at a. It fails with ErrInvalidAddress, leaving the map
// untouched, unless s is tagged with the layout at a.
func (m *Map[A, W]) SetStateAt(a A, s State[A, W]) error {
	i := m.bank.index(a)
	if m.bank.layouts[i] != s.layout {
		return fmt.Errorf("%w: cannot store %s at %s 0x%02x (%s)",
			ErrInvalidAddress, s.name(), m.bank.name, uint8(a), m.bank.layouts[i].Name)
	}
	m.words[i] = s.raw
	return nil
}

// Read returns the word stored at code.
func (m *Map[A, W]) Read(code uint8) (W, error) {
	a, err := m.bank.Parse(code)
	if err != nil {
		return 0, err
	}
	return m.words[m.bank.index(a)], nil
}

// Write stores data at code.
func (m *Map[A, W]) Write(code uint8, data W) error {
	a, err := m.bank.Parse(code)
	if err != nil {
		return err
	}
	m.words[m.bank.index(a)] = data
	return nil
}

// Words returns one word per register in address order.
func (m *Map[A, W]) Words() []W {
	return slices.Clone(m.words)
}

// LoadWords replaces every word of the map. words must be in address order
// and hold exactly one word per register.
func (m *Map[A, W]) LoadWords(words []W) error {
	if len(words) != len(m.words) {
		return fmt.Errorf("%w: %s has %d registers, got %d words",
			ErrSnapshotLength, m.bank.name, len(m.words), len(words))
	}
	copy(m.words, words)
	return nil
}

// States returns the state of every register in address order.
func (m *Map[A, W]) States() []State[A, W] {
	out := make([]State[A, W], len(m.words))
	for i, l := range m.bank.layouts {
		out[i] = State[A, W]{layout: l, raw: m.words[i]}
	}
	return out
}

// Clone returns an independent copy of the map.
func (m *Map[A, W]) Clone() *Map[A, W] {
	return &Map[A, W]{bank: m.bank, words: slices.Clone(m.words)}
}

// Equal reports whether both maps cover the same bank with the same words.
func (m *Map[A, W]) Equal(other *Map[A, W]) bool {
	if other == nil {
		return false
	}
	return m.bank == other.bank && slices.Equal(m.words, other.words)
}

// Diff returns, in address order, the addresses whose words differ between
// m and other. Both maps must cover the same bank.
func (m *Map[A, W]) Diff(other *Map[A, W]) []A {
	if m.bank != other.bank {
		panic(fmt.Sprintf("register: diff of %s and %s maps", m.bank.name, other.bank.name))
	}
	var out []A
	for i, l := range m.bank.layouts {
		if m.words[i] != other.words[i] {
			out = append(out, A(l.Addr))
		}
	}
	return out
}

// Get returns the register R held by m.
func Get[R any, PR Ptr[R, W], A Code, W Word](m *Map[A, W]) R {
	var r R
	p := PR(&r)
	p.SetRaw(m.words[m.mustSlot(p.Layout())])
	return r
}

// Set stores r in its slot of m.
func Set[R any, PR Ptr[R, W], A Code, W Word](m *Map[A, W], r R) {
	p := PR(&r)
	m.words[m.mustSlot(p.Layout())] = p.Raw()
}

// Update applies fn to the writer of R over the word held by m. Fields fn
// does not touch keep their stored value.
func Update[R any, Wr any, PR Writable[R, W, Wr], A Code, W Word](m *Map[A, W], fn func(Wr)) {
	var r R
	p := PR(&r)
	i := m.mustSlot(p.Layout())
	p.SetRaw(m.words[i])
	fn(p.Writer())
	m.words[i] = p.Raw()
}

func (m *Map[A, W]) mustSlot(l *Layout) int {
	i, ok := m.bank.slotOf(l)
	if !ok {
		panic(fmt.Sprintf("register: %s is not a register of %s", l.Name, m.bank.name))
	}
	return i
}
