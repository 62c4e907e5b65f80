package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAcceptsFixture(t *testing.T) {
	r := Check(Width16, ctrlLayout, statusLayout)
	assert.True(t, r.OK(), r.Err())
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 2, r.ReadOnlyDefaults)
	assert.NoError(t, r.Err())
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout *Layout
		want   string
	}{
		{
			name:   "LsbAboveMsb",
			layout: &Layout{Name: "X", Width: Width8, Fields: []Field{{Name: "f", Lsb: 5, Msb: 2, Access: AccessRead}}},
			want:   "X.f: lsb 5 above msb 2",
		},
		{
			name:   "BeyondWidth",
			layout: &Layout{Name: "X", Width: Width8, Fields: []Field{{Name: "f", Lsb: 6, Msb: 8, Access: AccessRead}}},
			want:   "X.f: bit 8 beyond 8-bit word",
		},
		{
			name:   "DefaultOverflow",
			layout: &Layout{Name: "X", Width: Width8, Fields: []Field{{Name: "f", Lsb: 0, Msb: 1, Access: AccessReadWrite, Default: 4, HasDefault: true}}},
			want:   "X.f: default 0x4 does not fit 2 bits",
		},
		{
			name:   "NoAccess",
			layout: &Layout{Name: "X", Width: Width8, Fields: []Field{{Name: "f", Lsb: 0, Msb: 0}}},
			want:   "X.f: field has no access mode",
		},
		{
			name:   "DuplicateField",
			layout: &Layout{Name: "X", Width: Width8, Fields: []Field{{Name: "f", Lsb: 0, Msb: 0, Access: AccessRead}, {Name: "f", Lsb: 1, Msb: 1, Access: AccessRead}}},
			want:   "X.f: duplicate field name",
		},
		{
			name:   "WrongWidth",
			layout: &Layout{Name: "X", Width: Width16},
			want:   "X: register is 16-bit in a 8-bit bank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Check(Width8, tt.layout)
			require.False(t, r.OK())
			assert.Equal(t, tt.want, r.Errors[0].String())
			assert.ErrorContains(t, r.Err(), tt.want)
		})
	}
}

func TestCheckBankErrors(t *testing.T) {
	a := &Layout{Name: "A", Addr: 0x01, Width: Width8}
	b := &Layout{Name: "B", Addr: 0x01, Width: Width8}
	c := &Layout{Name: "A", Addr: 0x02, Width: Width8}

	r := Check(Width8, a, b, c)
	require.Len(t, r.Errors, 2)
	assert.Equal(t, "B: address 0x01 already used by A", r.Errors[0].String())
	assert.Equal(t, "A: duplicate register name", r.Errors[1].String())

	r = Check(Width(12))
	assert.False(t, r.OK())
}

func TestCheckWarnings(t *testing.T) {
	l := &Layout{
		Name:  "X",
		Width: Width8,
		Fields: []Field{
			{Name: "low", Lsb: 0, Msb: 3, Access: AccessReadWrite, HasDefault: true},
			{Name: "mid", Lsb: 2, Msb: 5, Access: AccessRead},
			{Name: "top", Lsb: 7, Msb: 7, Access: AccessWrite},
		},
	}

	r := Check(Width8, l)
	assert.True(t, r.OK())
	require.Len(t, r.Warnings, 2)
	assert.Equal(t, "X.mid: bits 2..5 overlap low (bits 0..3)", r.Warnings[0].String())
	assert.Equal(t, "X.top: writable field has no default, reset leaves it unchanged", r.Warnings[1].String())
}

func TestReportMerge(t *testing.T) {
	var r Report
	r.Errorf("A", "", "bad")
	other := Report{ReadOnlyDefaults: 3}
	other.Warnf("B", "f", "odd %d", 1)

	r.Merge(other)
	assert.Len(t, r.Errors, 1)
	assert.Len(t, r.Warnings, 1)
	assert.Equal(t, 3, r.ReadOnlyDefaults)
	assert.Equal(t, "B.f: odd 1", r.Warnings[0].String())
}
