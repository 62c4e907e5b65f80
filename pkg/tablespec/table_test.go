package tablespec

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// tablesDir returns the absolute path to tables/ksz8863/ relative to this
// test file.
func tablesDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "tables", "ksz8863")
}

const minimal = `
tier: miim
width: 16
description: "Test PHY"
registers:
  - addr: 0x1F
    name: PhySpecial
    description: "PHY special control"
    fields:
      - {name: polarity_reversed, bits: "5", access: R, default: 0}
      - {name: force_link, bits: "3", access: RW}
      - {name: mode, bits: "8..11", access: RW, default: 0xA}
      - {name: level, bits: "12..=13", access: W, default: "0b10"}
`

func TestParseMinimal(t *testing.T) {
	tbl, err := Parse([]byte(minimal))
	require.NoError(t, err)

	if tbl.Tier != "miim" {
		t.Errorf("tier = %q, want miim", tbl.Tier)
	}
	if tbl.Package != "miim" {
		t.Errorf("package = %q, want the tier name", tbl.Package)
	}
	if !tbl.Scoped() {
		t.Error("scoped = false, want true")
	}
	require.Len(t, tbl.Registers, 1)
	reg := tbl.Registers[0]
	if reg.Addr != 0x1F {
		t.Errorf("addr = 0x%02x, want 0x1f", reg.Addr)
	}
	if len(reg.Fields) != 4 {
		t.Fatalf("len(fields) = %d, want 4", len(reg.Fields))
	}

	layouts, err := tbl.Layouts()
	require.NoError(t, err)
	require.Len(t, layouts, 1)

	l := layouts[0]
	assert.Equal(t, "PhySpecial", l.Name)
	assert.Equal(t, register.Width16, l.Width)
	assert.Equal(t, "PHY special control", l.Doc)
	assert.Equal(t, register.Field{Name: "polarity_reversed", Lsb: 5, Msb: 5, Access: register.AccessRead, HasDefault: true}, l.Fields[0])
	assert.Equal(t, register.Field{Name: "force_link", Lsb: 3, Msb: 3, Access: register.AccessReadWrite}, l.Fields[1])
	assert.Equal(t, register.Field{Name: "mode", Lsb: 8, Msb: 11, Access: register.AccessReadWrite, Default: 0xA, HasDefault: true}, l.Fields[2])
	assert.Equal(t, register.Field{Name: "level", Lsb: 12, Msb: 13, Access: register.AccessWrite, Default: 2, HasDefault: true}, l.Fields[3])
	assert.Equal(t, uint16(0x2A00), l.DefaultRaw())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("registers: []"))
	assert.ErrorContains(t, err, "missing tier")

	_, err = Parse([]byte("tier: [smi"))
	assert.ErrorContains(t, err, "parsing register table")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading")
}

func TestLayoutConversionErrors(t *testing.T) {
	reg := RawRegister{
		Name: "Bad",
		Fields: []RawField{
			{Name: "a", Bits: "x", Access: "R"},
			{Name: "b", Bits: "1", Access: "Q"},
			{Name: "c", Bits: "2", Access: "RW", Default: "zz"},
			{Name: "d", Bits: "3", Access: "RW", Default: 70000},
		},
	}

	_, err := reg.Layout(register.Width8)
	require.Error(t, err)
	assert.ErrorContains(t, err, `Bad: field a: invalid bits "x"`)
	assert.ErrorContains(t, err, "Bad: field b: unknown access mode")
	assert.ErrorContains(t, err, `Bad: field c: invalid default "zz"`)
	assert.ErrorContains(t, err, "Bad: field d: default 70000 out of range")
}

func TestParseBits(t *testing.T) {
	tests := []struct {
		in       string
		lsb, msb uint8
		wantErr  bool
	}{
		{in: "0", lsb: 0, msb: 0},
		{in: "15", lsb: 15, msb: 15},
		{in: "0..7", lsb: 0, msb: 7},
		{in: "13..=14", lsb: 13, msb: 14},
		{in: " 4..5 ", lsb: 4, msb: 5},
		{in: "7..3", lsb: 7, msb: 3},
		{in: "", wantErr: true},
		{in: "a", wantErr: true},
		{in: "1..", wantErr: true},
		{in: "300", wantErr: true},
	}
	for _, tt := range tests {
		lsb, msb, err := ParseBits(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.lsb, lsb, tt.in)
		assert.Equal(t, tt.msb, msb, tt.in)
	}
}

func TestLoadChipTables(t *testing.T) {
	tests := []struct {
		file   string
		tier   string
		width  register.Width
		count  int
		sample string
	}{
		{file: "smi.yaml", tier: TierDirect, width: register.Width8, count: 135, sample: "Gc1"},
		{file: "miim.yaml", tier: TierScoped, width: register.Width16, count: 8, sample: "Bcr"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			tbl, err := Load(filepath.Join(tablesDir(t), tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.tier, tbl.Tier)
			assert.Equal(t, tt.width, register.Width(tbl.Width))

			report := Validate(tbl)
			require.NoError(t, report.Err())

			layouts, err := tbl.Layouts()
			require.NoError(t, err)
			assert.Len(t, layouts, tt.count)

			found := false
			for _, l := range layouts {
				if l.Name == tt.sample {
					found = true
				}
			}
			assert.True(t, found, "missing %s", tt.sample)
		})
	}
}

func TestChipTableDefaults(t *testing.T) {
	tbl, err := Load(filepath.Join(tablesDir(t), "miim.yaml"))
	require.NoError(t, err)
	layouts, err := tbl.Layouts()
	require.NoError(t, err)

	want := map[string]uint16{
		"Bcr":     0x1020,
		"Bsr":     0x7808,
		"PhyIdR1": 0x0022,
		"PhyIdR2": 0x1430,
		"Anar":    0x05E0,
	}
	for _, l := range layouts {
		if w, ok := want[l.Name]; ok {
			assert.Equal(t, w, l.DefaultRaw(), l.Name)
		}
	}
}
