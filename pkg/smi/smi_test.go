package smi_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
	"github.com/ksz8863/ksz8863-go/pkg/tablespec"
)

var errBus = errors.New("bus fault")

// stubBus is a Transport whose calls are scripted with On.
type stubBus struct{ mock.Mock }

func (b *stubBus) Read(addr uint8) (uint8, error) {
	ret := b.Called(addr)
	return ret.Get(0).(uint8), ret.Error(1)
}

func (b *stubBus) Write(addr, data uint8) error {
	return b.Called(addr, data).Error(0)
}

func newStubBus(t *testing.T) *stubBus {
	b := &stubBus{}
	b.Test(t)
	t.Cleanup(func() { b.AssertExpectations(t) })
	return b
}

func TestLayoutsMatchTable(t *testing.T) {
	table, err := tablespec.Load(filepath.Join("..", "..", "tables", "ksz8863", "smi.yaml"))
	require.NoError(t, err)
	want, err := table.Layouts()
	require.NoError(t, err)

	require.Equal(t, len(want), smi.Bank().Len())
	for _, l := range want {
		a, ok := smi.Lookup(l.Name)
		require.True(t, ok, l.Name)
		assert.Equal(t, l, a.Layout(), l.Name)
	}
}

func TestParseAddress(t *testing.T) {
	valid := make(map[uint8]bool)
	for _, a := range smi.Addresses() {
		valid[uint8(a)] = true
	}
	assert.Len(t, valid, 135)

	for code := 0; code < 256; code++ {
		a, err := smi.ParseAddress(uint8(code))
		if valid[uint8(code)] {
			require.NoError(t, err)
			assert.Equal(t, uint8(code), uint8(a))
		} else {
			assert.ErrorIs(t, err, register.ErrInvalidAddress, "code 0x%02x", code)
		}
	}
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, smi.Address(0x03), smi.AddrGc1)
	assert.Equal(t, "Gc1", smi.AddrGc1.String())
	assert.Equal(t, "0x08", smi.Address(0x08).String())
	assert.Panics(t, func() { smi.Address(0x08).Layout() })
}

func TestDefaults(t *testing.T) {
	m := smi.NewMap()

	gc1 := smi.Get[smi.Gc1](m)
	assert.Equal(t, uint8(0x34), gc1.Raw())
	assert.True(t, gc1.Aging().IsSet())
	assert.True(t, gc1.TxFlowControl().IsSet())
	assert.True(t, gc1.PassAllFrames().IsClear())

	id := smi.Default[smi.ChipId0]()
	assert.Equal(t, uint8(0x88), id.FamilyId().Bits())

	id1 := smi.Default[smi.ChipId1]()
	assert.Equal(t, uint8(0x31), id1.Raw())
	assert.Equal(t, uint8(0x3), id1.ChipId().Bits())
	assert.True(t, id1.StartSwitch().IsSet())

	assert.Equal(t, uint8(0x34), m.State(smi.AddrGc1).Raw())
	assert.Equal(t, smi.DefaultState(smi.AddrGc1), m.State(smi.AddrGc1))
}

func TestWriteVersusModify(t *testing.T) {
	setPassAll := func(w *smi.Gc1W) { w.PassAllFrames().Set() }

	t.Run("Modify", func(t *testing.T) {
		m := smi.NewMap()
		require.NoError(t, m.Write(0x03, 0x00))

		require.NoError(t, smi.New(m).Gc1().Modify(setPassAll))
		assert.Equal(t, uint8(0x80), smi.Get[smi.Gc1](m).Raw())
	})

	t.Run("Write", func(t *testing.T) {
		m := smi.NewMap()
		require.NoError(t, m.Write(0x03, 0x00))

		require.NoError(t, smi.New(m).Gc1().Write(setPassAll))
		assert.Equal(t, uint8(0xB4), smi.Get[smi.Gc1](m).Raw())
	})
}

func TestModifyOverTransport(t *testing.T) {
	bus := newStubBus(t)
	bus.On("Read", uint8(0x03)).Return(uint8(0x34), nil).Once()
	bus.On("Write", uint8(0x03), uint8(0x30)).Return(nil).Once()

	s := smi.New(bus)
	err := s.Gc1().Modify(func(w *smi.Gc1W) { w.Aging().Clear() })
	require.NoError(t, err)
}

func TestWriteNeverReads(t *testing.T) {
	bus := newStubBus(t)
	bus.On("Write", uint8(0x12), uint8(0x04)).Return(nil).Once()

	s := smi.New(bus)
	err := s.Port1Ctrl2().Write(func(w *smi.Port1Ctrl2W) { w.Receive().Clear() })
	require.NoError(t, err)
	bus.AssertNotCalled(t, "Read", uint8(0x12))
}

func TestTransportErrorsForwarded(t *testing.T) {
	bus := newStubBus(t)
	bus.On("Read", uint8(0x00)).Return(uint8(0), errBus).Once()
	bus.On("Read", uint8(0x03)).Return(uint8(0), errBus).Once()
	bus.On("Write", uint8(0x01), uint8(0x31)).Return(errBus).Once()

	s := smi.New(bus)

	_, err := s.ChipId0().Read()
	assert.ErrorIs(t, err, errBus)

	called := false
	err = s.Gc1().Modify(func(*smi.Gc1W) { called = true })
	assert.ErrorIs(t, err, errBus)
	assert.False(t, called, "modify must not apply fn after a failed read")

	err = s.ChipId1().Write(func(*smi.ChipId1W) {})
	assert.ErrorIs(t, err, errBus)
}

func TestDynamicAccess(t *testing.T) {
	m := smi.NewMap()
	s := smi.New(m)

	st, err := s.Read(smi.AddrGc1)
	require.NoError(t, err)
	assert.Equal(t, smi.AddrGc1, st.Addr())
	assert.Equal(t, uint8(0x34), st.Raw())

	require.NoError(t, smi.DowncastModify[smi.Gc1](&st, func(w *smi.Gc1W) { w.FastAge().Set() }))
	require.NoError(t, s.Write(st))
	assert.True(t, smi.Get[smi.Gc1](m).FastAge().IsSet())

	err = s.Write(smi.State{})
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
}

func TestDowncast(t *testing.T) {
	st := smi.NewState(smi.AddrGc1, 0x81)

	gc1, err := smi.Downcast[smi.Gc1](st)
	require.NoError(t, err)
	assert.True(t, gc1.PassAllFrames().IsSet())
	assert.True(t, gc1.AggressiveBackOff().IsSet())
	assert.Equal(t, st, smi.StateOf(gc1))

	_, err = smi.Downcast[smi.ChipId0](st)
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
}

func TestHandleMetadata(t *testing.T) {
	s := smi.New(smi.NewMap())
	assert.Equal(t, uint8(0x03), s.Gc1().Addr())
	assert.Equal(t, "Gc1", s.Gc1().Layout().Name)
	assert.Equal(t, uint8(0x12), s.Port1Ctrl2().Addr())
}

func TestMapAsTransportRejectsUnmodelled(t *testing.T) {
	m := smi.NewMap()
	_, err := m.Read(0x08)
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
	assert.ErrorIs(t, m.Write(0x08, 1), register.ErrInvalidAddress)
}

func TestSetAndUpdate(t *testing.T) {
	m := smi.NewMap()

	gc1 := smi.Default[smi.Gc1]()
	gc1.Writer().Bits(0x00).Port3TailTag().Set()
	smi.Set(m, gc1)
	assert.Equal(t, uint8(0x40), m.State(smi.AddrGc1).Raw())

	smi.Update[smi.Gc1](m, func(w *smi.Gc1W) { w.Reset() })
	assert.Equal(t, uint8(0x34), m.State(smi.AddrGc1).Raw())
}

func TestResetLeavesFieldsWithoutDefault(t *testing.T) {
	m := smi.NewMap()
	require.NoError(t, m.Write(uint8(smi.AddrPort1Ctrl12), 0xE0))

	smi.Update[smi.Port1Ctrl12](m, func(w *smi.Port1Ctrl12W) { w.Reset() })
	assert.Equal(t, uint8(0xFF), m.State(smi.AddrPort1Ctrl12).Raw())

	smi.Update[smi.Port1Ctrl12](m, func(w *smi.Port1Ctrl12W) {
		w.Bits(0x00).AnEnable().Set().AdvFlowCtrl().Reset()
	})
	assert.Equal(t, uint8(0x90), m.State(smi.AddrPort1Ctrl12).Raw())
}
