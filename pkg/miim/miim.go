package miim

import (
	"fmt"
	"log/slog"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// Transport is the MIIM bus. Errors are returned to callers unchanged.
type Transport interface {
	Read(phy, reg uint8) (uint16, error)
	Write(phy, reg uint8, data uint16) error
}

// Reg is the handle of PHY register R.
type Reg[R any, Wr any, PR register.Writable[R, uint16, Wr]] = register.Handle[R, Wr, PR, uint16]

// Miim accesses the PHYs behind one MIIM bus.
type Miim struct {
	T Transport

	// Logger receives debug records of read-modify-write cycles. Nil
	// disables them.
	Logger *slog.Logger

	phys map[uint8]*Phy
}

// New returns a Miim over t.
func New(t Transport) *Miim {
	return &Miim{T: t}
}

// Phy returns the PHY at addr. Repeated calls return the same Phy.
func (m *Miim) Phy(addr uint8) *Phy {
	if p, ok := m.phys[addr]; ok {
		return p
	}
	if m.phys == nil {
		m.phys = make(map[uint8]*Phy)
	}
	p := &Phy{m: m, addr: addr}
	m.phys[addr] = p
	return p
}

// Phy is the register set of one PHY. It implements register.Port with the
// PHY address bound.
type Phy struct {
	m    *Miim
	addr uint8
}

// Addr returns the PHY address.
func (p *Phy) Addr() uint8 { return p.addr }

// ReadWord reads register reg of the PHY.
func (p *Phy) ReadWord(reg uint8) (uint16, error) {
	return p.m.T.Read(p.addr, reg)
}

// WriteWord writes register reg of the PHY.
func (p *Phy) WriteWord(reg uint8, data uint16) error {
	return p.m.T.Write(p.addr, reg, data)
}

// Handle returns the handle of register R of p. The generated accessors
// such as Bcr call it.
func Handle[R any, Wr any, PR register.Writable[R, uint16, Wr]](p *Phy) Reg[R, Wr, PR] {
	return register.NewHandle[R, Wr, PR, uint16](p, p.m.Logger)
}

// Read reads the register at a.
func (p *Phy) Read(a Address) (State, error) {
	l := bank.Layout(a)
	raw, err := p.ReadWord(l.Addr)
	if err != nil {
		return State{}, err
	}
	return bank.NewState(a, raw), nil
}

// Write writes st to its register.
func (p *Phy) Write(st State) error {
	if !st.Valid() {
		return fmt.Errorf("%w: write of an empty state", register.ErrInvalidAddress)
	}
	return p.WriteWord(uint8(st.Addr()), st.Raw())
}

var _ register.Port[uint16] = (*Phy)(nil)
