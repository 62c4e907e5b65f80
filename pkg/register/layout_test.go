package register

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPutGet(t *testing.T) {
	f := Field{Name: "mid", Lsb: 4, Msb: 7}

	assert.Equal(t, uint8(4), f.Bits())
	assert.False(t, f.IsBit())
	assert.Equal(t, uint16(0x00F0), f.Mask())
	assert.Equal(t, uint16(0xA), f.Get(0x12A4))
	assert.Equal(t, uint16(0x1254), f.Put(0x12A4, 0x5))
	assert.Equal(t, uint16(0x12F4), f.Put(0x12A4, 0xFF), "value truncated to field")
	assert.Equal(t, "4..7", f.Range())

	full := Field{Name: "all", Lsb: 0, Msb: 15}
	assert.Equal(t, uint16(0xFFFF), full.Mask())

	bit := Field{Name: "b", Lsb: 9, Msb: 9}
	assert.True(t, bit.IsBit())
	assert.Equal(t, "9", bit.Range())
}

func TestAccess(t *testing.T) {
	tests := []struct {
		in   string
		want Access
	}{
		{"R", AccessRead},
		{"readOnly", AccessRead},
		{"W", AccessWrite},
		{"writeOnly", AccessWrite},
		{"RW", AccessReadWrite},
		{"readWrite", AccessReadWrite},
	}
	for _, tt := range tests {
		got, err := ParseAccess(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAccess("X")
	assert.Error(t, err)

	assert.Equal(t, "RW", AccessReadWrite.String())
	assert.Equal(t, "-", Access(0).String())
	assert.True(t, AccessWrite.CanWrite())
	assert.False(t, AccessWrite.CanRead())
}

func TestDefaultConstruction(t *testing.T) {
	c := Default[Ctrl, *Ctrl, uint16]()
	assert.Equal(t, uint16(0x1208), c.Raw())
	assert.True(t, c.Bit3().IsSet())
	assert.Equal(t, uint16(0), c.Mode().Bits())
	assert.True(t, c.Busy().IsClear())

	s := Default[Status, *Status, uint16]()
	assert.Equal(t, uint16(0x22), s.ID().Bits())

	d := Decode[Status, *Status](uint16(0x0004))
	assert.True(t, d.Link().IsSet())
}

func TestResetInAnyOrder(t *testing.T) {
	writable := []func(w *CtrlW){
		func(w *CtrlW) { w.Bit3().Reset() },
		func(w *CtrlW) { w.Mode().Reset() },
		func(w *CtrlW) { w.Bit9().Reset() },
		func(w *CtrlW) { w.Bit12().Reset() },
		func(w *CtrlW) { w.Bit13().Reset() },
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		c := Decode[Ctrl, *Ctrl](uint16(rng.UintN(0x10000)) & ctrlLayout.WritableMask())
		order := rng.Perm(len(writable))
		for _, i := range order {
			writable[i](c.Writer())
		}
		require.Equal(t, ctrlLayout.DefaultRaw(), c.Raw(), "order %v", order)
	}
}

func TestWriterResetSkipsReadOnly(t *testing.T) {
	c := Decode[Ctrl, *Ctrl](uint16(0xFFFF))
	c.Writer().Reset()
	assert.Equal(t, uint16(0xDF0F), c.Raw(), "read-only and unassigned bits keep their value")

	s := Decode[Status, *Status](uint16(0x1234))
	s.Writer().Reset()
	assert.Equal(t, uint16(0x1234), s.Raw())
}

func TestResetKeepsFieldsWithoutDefault(t *testing.T) {
	l := &Layout{
		Name:  "X",
		Width: Width8,
		Fields: []Field{
			{Name: "free", Lsb: 5, Msb: 7, Access: AccessReadWrite},
			{Name: "low", Lsb: 0, Msb: 4, Access: AccessReadWrite, Default: 0x1F, HasDefault: true},
		},
	}

	assert.Equal(t, uint16(0xFF), l.ResetRaw(0xE0))
	assert.Equal(t, uint16(0x1F), l.ResetRaw(0x00))
	assert.Equal(t, uint16(0x1F), l.DefaultRaw(), "default construction zeroes fields without a default")

	var raw uint8 = 0xE0
	WriteBits(&raw, &l.Fields[0], struct{}{}).Bits(0x2)
	assert.Equal(t, uint8(0x40), raw)
	WriteResettableBits(&raw, &l.Fields[1], struct{}{}).Reset()
	assert.Equal(t, uint8(0x5F), raw)
}

func TestLayoutMasks(t *testing.T) {
	assert.Equal(t, uint16(0x32F8), ctrlLayout.WritableMask())
	assert.Equal(t, uint16(0), statusLayout.WritableMask())

	f, ok := ctrlLayout.Field("mode")
	require.True(t, ok)
	assert.Equal(t, uint8(4), f.Lsb)
	_, ok = ctrlLayout.Field("nope")
	assert.False(t, ok)

	assert.Equal(t, "Status{link: true, id: 0x12}", statusLayout.Format(0x1204))
}

func TestMapCodec(t *testing.T) {
	m := testBank.NewMap()
	require.NoError(t, m.Write(0x01, 0x0004))

	t.Run("CBOR", func(t *testing.T) {
		data, err := cbor.Marshal(m)
		require.NoError(t, err)

		got := testBank.NewMap()
		require.NoError(t, cbor.Unmarshal(data, got))
		assert.True(t, m.Equal(got))
	})

	t.Run("JSON", func(t *testing.T) {
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, "[4616, 4]", string(data))

		got := testBank.NewMap()
		require.NoError(t, json.Unmarshal(data, got))
		assert.True(t, m.Equal(got))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		got := testBank.NewMap()
		err := json.Unmarshal([]byte("[1, 2, 3]"), got)
		assert.ErrorIs(t, err, ErrSnapshotLength)
	})

	t.Run("Unbound", func(t *testing.T) {
		var got Map[testAddr, uint16]
		assert.Error(t, json.Unmarshal([]byte("[1, 2]"), &got))
	})
}

func TestNarrowMapCodec(t *testing.T) {
	bank := NewBank[testAddr, uint8]("narrow", Width8,
		&Layout{Name: "A", Addr: 0x10, Width: Width8, Fields: []Field{{Name: "v", Lsb: 0, Msb: 7, Access: AccessReadWrite, Default: 0x7F, HasDefault: true}}},
		&Layout{Name: "B", Addr: 0x02, Width: Width8},
	)
	m := bank.NewMap()

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, "[0, 127]", string(data), "words are numbers, not a byte string")

	err = json.Unmarshal([]byte("[256, 0]"), bank.NewMap())
	assert.Error(t, err)

	data, err = cbor.Marshal(m)
	require.NoError(t, err)
	var words []uint16
	require.NoError(t, cbor.Unmarshal(data, &words))
	assert.Equal(t, []uint16{0, 127}, words)
}
