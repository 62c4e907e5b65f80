package smi

import (
	"fmt"
	"log/slog"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// Reader reads one register word over SMI.
type Reader interface {
	Read(addr uint8) (uint8, error)
}

// Writer writes one register word over SMI.
type Writer interface {
	Write(addr, data uint8) error
}

// Transport is the SMI bus. Errors are returned to callers unchanged.
type Transport interface {
	Reader
	Writer
}

// Reg is the handle of SMI register R.
type Reg[R any, Wr any, PR register.Writable[R, uint8, Wr]] = register.Handle[R, Wr, PR, uint8]

// Smi accesses the SMI registers of one switch.
type Smi struct {
	T Transport

	// Logger receives debug records of read-modify-write cycles. Nil
	// disables them.
	Logger *slog.Logger
}

// New returns an Smi over t.
func New(t Transport) *Smi {
	return &Smi{T: t}
}

// Handle returns the handle of register R. The generated accessors such as
// Gc1 call it.
func Handle[R any, Wr any, PR register.Writable[R, uint8, Wr]](s *Smi) Reg[R, Wr, PR] {
	return register.NewHandle[R, Wr, PR, uint8](port{s.T}, s.Logger)
}

// Read reads the register at a.
func (s *Smi) Read(a Address) (State, error) {
	l := bank.Layout(a)
	raw, err := s.T.Read(l.Addr)
	if err != nil {
		return State{}, err
	}
	return bank.NewState(a, raw), nil
}

// Write writes st to its register.
func (s *Smi) Write(st State) error {
	if !st.Valid() {
		return fmt.Errorf("%w: write of an empty state", register.ErrInvalidAddress)
	}
	return s.T.Write(uint8(st.Addr()), st.Raw())
}

// port adapts a Transport to register.Port.
type port struct {
	t Transport
}

func (p port) ReadWord(addr uint8) (uint8, error) { return p.t.Read(addr) }

func (p port) WriteWord(addr uint8, data uint8) error { return p.t.Write(addr, data) }
