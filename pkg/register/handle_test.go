package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtrlHandle() (*mapPort, ctrlHandle) {
	port := &mapPort{m: testBank.NewMap()}
	return port, NewHandle[Ctrl, *CtrlW, *Ctrl, uint16](port, nil)
}

func TestHandleWriteAppliesOverDefault(t *testing.T) {
	port, h := newCtrlHandle()
	require.NoError(t, port.m.Write(0x00, 0x0000))

	err := h.Write(func(w *CtrlW) { w.Bit13().Set() })
	require.NoError(t, err)
	assert.Equal(t, 0, port.reads, "write must not read")

	got, err := h.Read()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3208), got.Raw())
	assert.True(t, got.Bit13().IsSet())
	assert.True(t, got.Bit12().IsSet())
}

func TestHandleWriteVersusModify(t *testing.T) {
	set13 := func(w *CtrlW) { w.Bit13().Set() }

	t.Run("Modify", func(t *testing.T) {
		port, h := newCtrlHandle()
		require.NoError(t, port.m.Write(0x00, 0x0208))

		require.NoError(t, h.Modify(set13))

		got, err := h.Read()
		require.NoError(t, err)
		assert.Equal(t, uint16(0x2208), got.Raw())
		assert.True(t, got.Bit12().IsClear(), "modify keeps the externally cleared bit")
	})

	t.Run("Write", func(t *testing.T) {
		port, h := newCtrlHandle()
		require.NoError(t, port.m.Write(0x00, 0x0208))

		require.NoError(t, h.Write(set13))

		got, err := h.Read()
		require.NoError(t, err)
		assert.Equal(t, uint16(0x3208), got.Raw())
		assert.True(t, got.Bit12().IsSet(), "write forces the default back")
	})
}

func TestHandleModifyCallCounts(t *testing.T) {
	port, h := newCtrlHandle()

	require.NoError(t, h.Modify(func(w *CtrlW) { w.Mode().Bits(0x5) }))

	assert.Equal(t, 1, port.reads)
	assert.Equal(t, 1, port.writes)
	got := Get[Ctrl, *Ctrl](port.m)
	assert.Equal(t, uint16(0x5), got.Mode().Bits())
}

func TestHandleChainedWrite(t *testing.T) {
	port, h := newCtrlHandle()

	err := h.Write(func(w *CtrlW) {
		w.Bit3().Clear().Bit9().Clear().Mode().Bits(0xF).Bit13().Set()
	})
	require.NoError(t, err)

	raw, err := port.m.Read(0x00)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1000|0x2000|0xF0), raw)
}

func TestHandleBitsDiscardsOverflow(t *testing.T) {
	port, h := newCtrlHandle()

	require.NoError(t, h.Write(func(w *CtrlW) { w.Mode().Bits(0x1F) }))

	raw, err := port.m.Read(0x00)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1208|0xF0), raw)
}

func TestHandleErrorsForwarded(t *testing.T) {
	t.Run("Read", func(t *testing.T) {
		port, h := newCtrlHandle()
		port.readErr = errBus

		_, err := h.Read()
		assert.Same(t, errBus, err)
	})

	t.Run("ModifyReadFails", func(t *testing.T) {
		port, h := newCtrlHandle()
		port.readErr = errBus

		called := false
		err := h.Modify(func(*CtrlW) { called = true })
		assert.Same(t, errBus, err)
		assert.False(t, called)
		assert.Equal(t, 0, port.writes)
	})

	t.Run("Write", func(t *testing.T) {
		port, h := newCtrlHandle()
		port.writeErr = errBus

		err := h.Write(func(w *CtrlW) { w.Bit13().Set() })
		assert.ErrorIs(t, err, errBus)
	})
}

func TestHandleReadNeverCaches(t *testing.T) {
	port, h := newCtrlHandle()

	first, err := h.Read()
	require.NoError(t, err)
	require.NoError(t, port.m.Write(0x00, 0xABCD))
	second, err := h.Read()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1208), first.Raw())
	assert.Equal(t, uint16(0xABCD), second.Raw())
	assert.Equal(t, 2, port.reads)
}

func TestHandleAddr(t *testing.T) {
	_, h := newCtrlHandle()
	assert.Equal(t, uint8(0x00), h.Addr())
	assert.Same(t, ctrlLayout, h.Layout())
}
