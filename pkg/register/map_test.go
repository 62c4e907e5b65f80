package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankParse(t *testing.T) {
	for code := 0; code < 256; code++ {
		a, err := testBank.Parse(uint8(code))
		switch code {
		case 0x00, 0x01:
			require.NoError(t, err)
			assert.Equal(t, uint8(code), uint8(a))
		default:
			assert.ErrorIs(t, err, ErrInvalidAddress, "code 0x%02x", code)
		}
	}
}

func TestBankOrdersByAddress(t *testing.T) {
	assert.Equal(t, []testAddr{addrCtrl, addrStatus}, testBank.Addresses())
	assert.Equal(t, 2, testBank.Len())
	assert.Equal(t, "test", testBank.Name())
	assert.Equal(t, Width16, testBank.Width())

	l, ok := testBank.Lookup("Status")
	require.True(t, ok)
	assert.Same(t, statusLayout, l)
	_, ok = testBank.Lookup("Nope")
	assert.False(t, ok)
}

func TestNewBankPanics(t *testing.T) {
	t.Run("DuplicateAddress", func(t *testing.T) {
		dup := &Layout{Name: "Dup", Addr: 0x00, Width: Width16}
		assert.Panics(t, func() { NewBank[testAddr, uint16]("dup", Width16, ctrlLayout, dup) })
	})

	t.Run("WidthMismatch", func(t *testing.T) {
		assert.Panics(t, func() { NewBank[testAddr, uint8]("narrow", Width8, ctrlLayout) })
	})

	t.Run("WordTooSmall", func(t *testing.T) {
		assert.Panics(t, func() { NewBank[testAddr, uint8]("word", Width16) })
	})
}

func TestForgedAddressPanics(t *testing.T) {
	assert.Panics(t, func() { testBank.Layout(testAddr(0x42)) })
}

func TestDefaultMap(t *testing.T) {
	m := testBank.NewMap()

	for _, a := range testBank.Addresses() {
		s := m.State(a)
		require.True(t, s.Valid())
		assert.Equal(t, a, s.Addr())
		assert.Equal(t, uint16(s.Layout().DefaultRaw()), s.Raw())
		assert.Equal(t, testBank.DefaultState(a), s)
	}
	assert.Equal(t, uint16(0x1208), m.State(addrCtrl).Raw())
	assert.Equal(t, uint16(0x2200), m.State(addrStatus).Raw())
}

func TestStateRoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		raw := uint16(v)

		c, err := Downcast[Ctrl, *Ctrl](testBank.NewState(addrCtrl, raw))
		require.NoError(t, err)
		require.Equal(t, raw, c.Raw())

		s, err := Downcast[Status, *Status](testBank.NewState(addrStatus, raw))
		require.NoError(t, err)
		require.Equal(t, raw, s.Raw())

		require.Equal(t, testBank.NewState(addrCtrl, raw), StateOf[Ctrl, *Ctrl, testAddr, uint16](c))
	}
}

func TestDowncastMismatch(t *testing.T) {
	_, err := Downcast[Status, *Status](testBank.NewState(addrCtrl, 0x1234))
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Downcast[Ctrl, *Ctrl](State[testAddr, uint16]{})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDowncastModify(t *testing.T) {
	s := testBank.NewState(addrCtrl, 0x0000)

	err := DowncastModify[Ctrl, *CtrlW, *Ctrl](&s, func(w *CtrlW) { w.Bit13().Set() })
	require.NoError(t, err)
	assert.Equal(t, uint16(0x2000), s.Raw())

	err = DowncastModify[Status, *StatusW, *Status](&s, func(w *StatusW) { w.Reset() })
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Equal(t, uint16(0x2000), s.Raw(), "state untouched on mismatch")
}

func TestStateString(t *testing.T) {
	s := testBank.DefaultState(addrCtrl)
	assert.Equal(t, "Ctrl{bit3: true, mode: 0x0, bit9: true, bit12: true, bit13: false, busy: false}", s.String())
	assert.Len(t, s.Fields(), 6)

	var zero State[testAddr, uint16]
	assert.False(t, zero.Valid())
	assert.Equal(t, "<invalid>", zero.String())
	assert.Nil(t, zero.Fields())
	assert.Panics(t, func() { zero.Addr() })
}

func TestMapSetState(t *testing.T) {
	m := testBank.NewMap()

	require.NoError(t, m.SetState(testBank.NewState(addrStatus, 0x0004)))
	assert.Equal(t, uint16(0x0004), m.State(addrStatus).Raw())

	err := m.SetState(State[testAddr, uint16]{})
	assert.ErrorIs(t, err, ErrInvalidAddress)

	foreign := &Layout{Name: "Ctrl", Addr: 0x00, Width: Width16}
	err = m.SetState(State[testAddr, uint16]{layout: foreign, raw: 1})
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Equal(t, uint16(0x1208), m.State(addrCtrl).Raw())
}

func TestMapSetStateAtRejectsMismatch(t *testing.T) {
	m := testBank.NewMap()

	err := m.SetStateAt(addrCtrl, testBank.NewState(addrStatus, 0xFFFF))
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Equal(t, uint16(0x1208), m.State(addrCtrl).Raw())
	assert.Equal(t, ctrlLayout, m.State(addrCtrl).Layout())

	require.NoError(t, m.SetStateAt(addrCtrl, testBank.NewState(addrCtrl, 0xFFFF)))
	assert.Equal(t, uint16(0xFFFF), m.State(addrCtrl).Raw())
}

func TestMapTransport(t *testing.T) {
	m := testBank.NewMap()

	require.NoError(t, m.Write(0x01, 0xBEEF))
	v, err := m.Read(0x01)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), v)

	_, err = m.Read(0x02)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.ErrorIs(t, m.Write(0x02, 1), ErrInvalidAddress)
}

func TestMapTypedAccess(t *testing.T) {
	m := testBank.NewMap()

	c := Get[Ctrl, *Ctrl](m)
	assert.Equal(t, uint16(0x1208), c.Raw())

	c.Writer().Bit12().Clear()
	Set(m, c)
	assert.Equal(t, uint16(0x0208), m.State(addrCtrl).Raw())

	Update[Ctrl](m, func(w *CtrlW) { w.Bit13().Set() })
	assert.Equal(t, uint16(0x2208), m.State(addrCtrl).Raw())

	Update[Ctrl](m, func(w *CtrlW) { w.Reset() })
	assert.Equal(t, uint16(0x1208), m.State(addrCtrl).Raw())
}

func TestMapWordsAndDiff(t *testing.T) {
	m := testBank.NewMap()
	assert.Equal(t, []uint16{0x1208, 0x2200}, m.Words())

	other := m.Clone()
	assert.True(t, m.Equal(other))
	assert.False(t, m.Equal(nil))
	assert.Empty(t, m.Diff(other))

	require.NoError(t, other.Write(0x01, 0x0004))
	assert.False(t, m.Equal(other))
	assert.Equal(t, []testAddr{addrStatus}, m.Diff(other))
	assert.Equal(t, uint16(0x2200), m.State(addrStatus).Raw(), "clone is independent")

	require.NoError(t, m.LoadWords(other.Words()))
	assert.True(t, m.Equal(other))

	err := m.LoadWords([]uint16{1})
	assert.ErrorIs(t, err, ErrSnapshotLength)

	m.Reset()
	assert.Equal(t, []uint16{0x1208, 0x2200}, m.Words())

	states := m.States()
	require.Len(t, states, 2)
	assert.Equal(t, addrCtrl, states[0].Addr())
	assert.Equal(t, addrStatus, states[1].Addr())
}
