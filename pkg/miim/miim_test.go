package miim_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/tablespec"
)

var errBus = errors.New("mdio timeout")

// stubBus is a Transport whose calls are scripted with On.
type stubBus struct{ mock.Mock }

func (b *stubBus) Read(phy, reg uint8) (uint16, error) {
	ret := b.Called(phy, reg)
	return ret.Get(0).(uint16), ret.Error(1)
}

func (b *stubBus) Write(phy, reg uint8, data uint16) error {
	return b.Called(phy, reg, data).Error(0)
}

func newStubBus(t *testing.T) *stubBus {
	b := &stubBus{}
	b.Test(t)
	t.Cleanup(func() { b.AssertExpectations(t) })
	return b
}

func TestLayoutsMatchTable(t *testing.T) {
	table, err := tablespec.Load(filepath.Join("..", "..", "tables", "ksz8863", "miim.yaml"))
	require.NoError(t, err)
	want, err := table.Layouts()
	require.NoError(t, err)

	require.Equal(t, len(want), miim.Bank().Len())
	for _, l := range want {
		a, ok := miim.Lookup(l.Name)
		require.True(t, ok, l.Name)
		assert.Equal(t, l, a.Layout(), l.Name)
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		addr miim.Address
		want uint16
	}{
		{miim.AddrBcr, 0x1020},
		{miim.AddrBsr, 0x7808},
		{miim.AddrPhyIdR1, 0x0022},
		{miim.AddrPhyIdR2, 0x1430},
		{miim.AddrAnar, 0x05E0},
	}
	m := miim.NewMap()
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.State(tt.addr).Raw(), tt.addr.String())
	}

	bcr := miim.Default[miim.Bcr]()
	assert.True(t, bcr.EnableAutoneg().IsSet())
	assert.True(t, bcr.HpMdix().IsSet())
	assert.True(t, bcr.SoftReset().IsClear())
}

func TestParseAddress(t *testing.T) {
	a, err := miim.ParseAddress(0x1F)
	require.NoError(t, err)
	assert.Equal(t, miim.AddrPhySpecial, a)
	assert.Equal(t, "PhySpecial", a.String())

	_, err = miim.ParseAddress(0x06)
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
	assert.Equal(t, "0x06", miim.Address(0x06).String())
	assert.Len(t, miim.Addresses(), 8)
}

func TestPhyIsReused(t *testing.T) {
	m := miim.New(miim.NewSim())

	p1 := m.Phy(0x01)
	assert.Same(t, p1, m.Phy(0x01))
	assert.NotSame(t, p1, m.Phy(0x02))
	assert.Equal(t, uint8(0x01), p1.Addr())
}

func TestModifyOverTransport(t *testing.T) {
	bus := newStubBus(t)
	bus.On("Read", uint8(0x02), uint8(0x00)).Return(uint16(0x1020), nil).Once()
	bus.On("Write", uint8(0x02), uint8(0x00), uint16(0x1220)).Return(nil).Once()

	m := miim.New(bus)
	err := m.Phy(0x02).Bcr().Modify(func(w *miim.BcrW) { w.RestartAutoneg().Set() })
	require.NoError(t, err)
}

func TestTransportErrorsForwarded(t *testing.T) {
	bus := newStubBus(t)
	bus.On("Read", uint8(0x01), uint8(0x01)).Return(uint16(0), errBus).Once()
	bus.On("Write", uint8(0x01), uint8(0x04), uint16(0x05E0)).Return(errBus).Once()

	phy := miim.New(bus).Phy(0x01)

	_, err := phy.Bsr().Read()
	assert.ErrorIs(t, err, errBus)

	err = phy.Anar().Write(func(*miim.AnarW) {})
	assert.ErrorIs(t, err, errBus)
}

func TestSimIsolatesPhys(t *testing.T) {
	sim := miim.NewSim()
	m := miim.New(sim)

	err := m.Phy(0x01).Bcr().Write(func(w *miim.BcrW) { w.PowerDown().Set() })
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x01}, sim.PHYs())

	bcr1, err := m.Phy(0x01).Bcr().Read()
	require.NoError(t, err)
	bcr2, err := m.Phy(0x02).Bcr().Read()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1820), bcr1.Raw())
	assert.Equal(t, uint16(0x1020), bcr2.Raw())
	assert.Equal(t, []uint8{0x01, 0x02}, sim.PHYs())
	assert.Equal(t, []miim.Address{miim.AddrBcr}, sim.Map(0x01).Diff(sim.Map(0x02)))
}

func TestSimFailedAccessCreatesNoPhy(t *testing.T) {
	sim := miim.NewSim()

	_, err := sim.Read(0x07, 0x06)
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
	assert.ErrorIs(t, sim.Write(0x07, 0x06, 1), register.ErrInvalidAddress)
	assert.Empty(t, sim.PHYs())
}

func TestMapIgnoresPhyAddress(t *testing.T) {
	m := miim.NewMap()
	require.NoError(t, m.Write(0x05, 0x04, 0x01E1))

	v, err := m.Read(0x09, 0x04)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x01E1), v)

	_, err = m.Read(0x01, 0x06)
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
}

func TestDynamicAccess(t *testing.T) {
	sim := miim.NewSim()
	phy := miim.New(sim).Phy(0x01)

	st, err := phy.Read(miim.AddrBcr)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1020), st.Raw())

	require.NoError(t, miim.DowncastModify[miim.Bcr](&st, func(w *miim.BcrW) { w.Loopback().Set() }))
	require.NoError(t, phy.Write(st))
	assert.True(t, miim.Get[miim.Bcr](sim.Map(0x01)).Loopback().IsSet())

	_, err = miim.Downcast[miim.Bsr](st)
	assert.ErrorIs(t, err, register.ErrInvalidAddress)
	assert.ErrorIs(t, phy.Write(miim.State{}), register.ErrInvalidAddress)
}

func TestMapHelpers(t *testing.T) {
	m := miim.NewMap()

	miim.Update[miim.Anar](m, func(w *miim.AnarW) { w.Bits(0x0001) })
	assert.Equal(t, uint16(0x0001), m.State(miim.AddrAnar).Raw())

	clone := m.Clone()
	assert.True(t, m.Equal(clone))
	assert.False(t, m.Equal(nil))

	bcr := miim.Get[miim.Bcr](clone)
	bcr.Writer().ForceFd().Set()
	miim.Set(clone, bcr)
	assert.False(t, m.Equal(clone))
	assert.Equal(t, []miim.Address{miim.AddrBcr}, m.Diff(clone))
	assert.Equal(t, miim.StateOf(bcr), clone.State(miim.AddrBcr))
}

func TestMapJSON(t *testing.T) {
	m := miim.NewMap()
	require.NoError(t, m.Write(0x01, 0x1F, 0x0020))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	got := miim.NewMap()
	require.NoError(t, json.Unmarshal(data, got))
	assert.True(t, m.Equal(got))
}
