package register

// State is the decoded value of any one register of a bank. Its tag is the
// register's layout and its payload the raw word. The zero State is invalid;
// States are obtained from a Bank, a Map, or StateOf.
type State[A Code, W Word] struct {
	layout *Layout
	raw    W
}

// Valid reports whether s carries a register.
func (s State[A, W]) Valid() bool { return s.layout != nil }

// Addr returns the address consistent with the state's tag.
func (s State[A, W]) Addr() A {
	if s.layout == nil {
		panic("register: Addr of invalid State")
	}
	return A(s.layout.Addr)
}

// Raw returns the register word.
func (s State[A, W]) Raw() W { return s.raw }

// Layout returns the tag. It is nil for an invalid State.
func (s State[A, W]) Layout() *Layout { return s.layout }

// Fields decodes every readable field.
func (s State[A, W]) Fields() []FieldValue {
	if s.layout == nil {
		return nil
	}
	return s.layout.Decode(uint16(s.raw))
}

// String renders the state as "Name{field: value, ...}".
func (s State[A, W]) String() string {
	if s.layout == nil {
		return "<invalid>"
	}
	return s.layout.Format(uint16(s.raw))
}

func (s State[A, W]) name() string {
	if s.layout == nil {
		return "<invalid>"
	}
	return s.layout.Name
}
