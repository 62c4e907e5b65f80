package register

import (
	"context"
	"log/slog"
)

// Port is the raw word primitive a handle talks to. Each tier adapts its
// transport into a Port, binding the scope for scoped tiers. Errors are
// returned to callers of the handle unchanged.
type Port[W Word] interface {
	ReadWord(addr uint8) (W, error)
	WriteWord(addr uint8, data W) error
}

// Handle binds a port to the register type R.
type Handle[R any, Wr any, PR Writable[R, W, Wr], W Word] struct {
	port   Port[W]
	logger *slog.Logger
}

// NewHandle returns a handle for R over port. logger may be nil.
func NewHandle[R any, Wr any, PR Writable[R, W, Wr], W Word](port Port[W], logger *slog.Logger) Handle[R, Wr, PR, W] {
	return Handle[R, Wr, PR, W]{port: port, logger: logger}
}

// Layout returns the layout of R.
func (h Handle[R, Wr, PR, W]) Layout() *Layout {
	var r R
	return PR(&r).Layout()
}

// Addr returns the address of R within its tier.
func (h Handle[R, Wr, PR, W]) Addr() uint8 { return h.Layout().Addr }

// Read reads the current value of the register. Every call goes to the
// port.
func (h Handle[R, Wr, PR, W]) Read() (R, error) {
	var r R
	p := PR(&r)
	raw, err := h.port.ReadWord(p.Layout().Addr)
	if err != nil {
		return r, err
	}
	p.SetRaw(raw)
	return r, nil
}

// Write stores the register's default value with fn applied to it. Fields
// fn leaves untouched are written with their default, not with the value
// the device currently holds.
func (h Handle[R, Wr, PR, W]) Write(fn func(Wr)) error {
	var r R
	p := PR(&r)
	l := p.Layout()
	p.SetRaw(W(l.DefaultRaw()))
	fn(p.Writer())
	return h.port.WriteWord(l.Addr, p.Raw())
}

// Modify reads the register, applies fn to the value read, and writes the
// result back. Fields fn leaves untouched keep the value read.
//
// The read and the write are separate port calls. A change made by another
// writer in between is overwritten.
func (h Handle[R, Wr, PR, W]) Modify(fn func(Wr)) error {
	r, err := h.Read()
	if err != nil {
		return err
	}
	p := PR(&r)
	before := p.Raw()
	fn(p.Writer())
	after := p.Raw()
	if h.logger != nil && h.logger.Enabled(context.Background(), slog.LevelDebug) {
		h.logger.Debug("register modify",
			"register", p.Layout().Name,
			"before", uint16(before),
			"after", uint16(after))
	}
	return h.port.WriteWord(p.Layout().Addr, after)
}
