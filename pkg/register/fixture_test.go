package register

import "errors"

// Hand-written registers shaped like generated code.

type testAddr uint8

const (
	addrCtrl   testAddr = 0x00
	addrStatus testAddr = 0x01
)

var ctrlLayout = &Layout{
	Name:  "Ctrl",
	Addr:  0x00,
	Width: Width16,
	Fields: []Field{
		{Name: "bit3", Lsb: 3, Msb: 3, Access: AccessReadWrite, Default: 1, HasDefault: true},
		{Name: "mode", Lsb: 4, Msb: 7, Access: AccessReadWrite, HasDefault: true},
		{Name: "bit9", Lsb: 9, Msb: 9, Access: AccessReadWrite, Default: 1, HasDefault: true},
		{Name: "bit12", Lsb: 12, Msb: 12, Access: AccessReadWrite, Default: 1, HasDefault: true},
		{Name: "bit13", Lsb: 13, Msb: 13, Access: AccessReadWrite, HasDefault: true},
		{Name: "busy", Lsb: 15, Msb: 15, Access: AccessRead, HasDefault: true},
	},
}

var statusLayout = &Layout{
	Name:  "Status",
	Addr:  0x01,
	Width: Width16,
	Fields: []Field{
		{Name: "link", Lsb: 2, Msb: 2, Access: AccessRead},
		{Name: "id", Lsb: 8, Msb: 15, Access: AccessRead, Default: 0x22, HasDefault: true},
	},
}

var testBank = NewBank[testAddr, uint16]("test", Width16, statusLayout, ctrlLayout)

type Ctrl struct{ raw uint16 }

type CtrlW Ctrl

func (Ctrl) Layout() *Layout { return ctrlLayout }
func (r Ctrl) Raw() uint16 { return r.raw }
func (r *Ctrl) SetRaw(raw uint16) { r.raw = raw }
func (r *Ctrl) Writer() *CtrlW { return (*CtrlW)(r) }
func (r Ctrl) Bit3() BitR { return ReadBit(r.raw, &ctrlLayout.Fields[0]) }
func (r Ctrl) Mode() BitsR[uint16] { return ReadBits(r.raw, &ctrlLayout.Fields[1]) }
func (r Ctrl) Bit12() BitR { return ReadBit(r.raw, &ctrlLayout.Fields[3]) }
func (r Ctrl) Bit13() BitR { return ReadBit(r.raw, &ctrlLayout.Fields[4]) }
func (r Ctrl) Busy() BitR { return ReadBit(r.raw, &ctrlLayout.Fields[5]) }
func (w *CtrlW) Reset() *CtrlW { ResetWord(&w.raw, ctrlLayout); return w }
func (w *CtrlW) Bits(v uint16) *CtrlW { w.raw = v; return w }

func (w *CtrlW) Bit3() ResettableBitW[uint16, *CtrlW] {
	return WriteResettableBit(&w.raw, &ctrlLayout.Fields[0], w)
}

func (w *CtrlW) Mode() ResettableBitsW[uint16, *CtrlW] {
	return WriteResettableBits(&w.raw, &ctrlLayout.Fields[1], w)
}

func (w *CtrlW) Bit9() ResettableBitW[uint16, *CtrlW] {
	return WriteResettableBit(&w.raw, &ctrlLayout.Fields[2], w)
}

func (w *CtrlW) Bit12() ResettableBitW[uint16, *CtrlW] {
	return WriteResettableBit(&w.raw, &ctrlLayout.Fields[3], w)
}

func (w *CtrlW) Bit13() ResettableBitW[uint16, *CtrlW] {
	return WriteResettableBit(&w.raw, &ctrlLayout.Fields[4], w)
}

type Status struct{ raw uint16 }

type StatusW Status

func (Status) Layout() *Layout { return statusLayout }
func (r Status) Raw() uint16 { return r.raw }
func (r *Status) SetRaw(raw uint16) { r.raw = raw }
func (r *Status) Writer() *StatusW { return (*StatusW)(r) }
func (r Status) Link() BitR { return ReadBit(r.raw, &statusLayout.Fields[0]) }
func (r Status) ID() BitsR[uint16] { return ReadBits(r.raw, &statusLayout.Fields[1]) }
func (w *StatusW) Reset() *StatusW { ResetWord(&w.raw, statusLayout); return w }

type ctrlHandle = Handle[Ctrl, *CtrlW, *Ctrl, uint16]

// mapPort serves a Map as a port and counts the calls it receives.
type mapPort struct {
	m        *Map[testAddr, uint16]
	reads    int
	writes   int
	readErr  error
	writeErr error
}

func (p *mapPort) ReadWord(addr uint8) (uint16, error) {
	p.reads++
	if p.readErr != nil {
		return 0, p.readErr
	}
	return p.m.Read(addr)
}

func (p *mapPort) WriteWord(addr uint8, data uint16) error {
	p.writes++
	if p.writeErr != nil {
		return p.writeErr
	}
	return p.m.Write(addr, data)
}

var errBus = errors.New("bus fault")
