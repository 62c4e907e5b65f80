package register

import "fmt"

// Word is the raw storage of a register: 8 or 16 bits.
type Word interface {
	~uint8 | ~uint16
}

// Code is the numeric address type of a bank.
type Code interface {
	~uint8
}

// Register is implemented by every generated register type. Layout must not
// depend on the receiver's value, so it can be called on a zero register.
type Register[W Word] interface {
	Layout() *Layout
	Raw() W
	SetRaw(W)
}

// Ptr constrains PR to be *R and a Register.
type Ptr[R any, W Word] interface {
	*R
	Register[W]
}

// Writable constrains PR to be *R, a Register, and to hand out the field
// writer Wr of the register.
type Writable[R any, W Word, Wr any] interface {
	Ptr[R, W]
	Writer() Wr
}

// Default returns R with every field at its default.
func Default[R any, PR Ptr[R, W], W Word]() R {
	var r R
	p := PR(&r)
	p.SetRaw(W(p.Layout().DefaultRaw()))
	return r
}

// Decode returns R holding raw.
func Decode[R any, PR Ptr[R, W], W Word](raw W) R {
	var r R
	PR(&r).SetRaw(raw)
	return r
}

// ResetWord restores every writable field of *raw that declares a default.
// Generated
// writers use it to implement Reset.
func ResetWord[W Word](raw *W, l *Layout) {
	*raw = W(l.ResetRaw(uint16(*raw)))
}

// StateOf lifts a typed register into its dynamic State.
func StateOf[R any, PR Ptr[R, W], A Code, W Word](r R) State[A, W] {
	p := PR(&r)
	return State[A, W]{layout: p.Layout(), raw: p.Raw()}
}

// Downcast recovers the typed register R from s. It fails with
// ErrInvalidAddress unless s is tagged with R's layout.
func Downcast[R any, PR Ptr[R, W], A Code, W Word](s State[A, W]) (R, error) {
	var r R
	p := PR(&r)
	if s.layout == nil || s.layout != p.Layout() {
		return r, fmt.Errorf("%w: state is %s, not %s", ErrInvalidAddress, s.name(), p.Layout().Name)
	}
	p.SetRaw(s.raw)
	return r, nil
}

// DowncastModify applies fn to the writer of R over the word held by s. It
// fails with ErrInvalidAddress, leaving s untouched, unless s is tagged with
// R's layout.
func DowncastModify[R any, Wr any, PR Writable[R, W, Wr], A Code, W Word](s *State[A, W], fn func(Wr)) error {
	r, err := Downcast[R, PR, A, W](*s)
	if err != nil {
		return err
	}
	p := PR(&r)
	fn(p.Writer())
	s.raw = p.Raw()
	return nil
}
