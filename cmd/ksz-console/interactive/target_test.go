package interactive

import (
	"testing"

	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	c := New(Config{})

	tests := []struct {
		in    string
		label string
		width register.Width
	}{
		{"Gc1", "Gc1 (0x03)", register.Width8},
		{"gc1", "Gc1 (0x03)", register.Width8},
		{"0x03", "Gc1 (0x03)", register.Width8},
		{"3", "Gc1 (0x03)", register.Width8},
		{"phy1/Bcr", "phy1/Bcr (0x00)", register.Width16},
		{"PHY2/physpecial", "phy2/PhySpecial (0x1f)", register.Width16},
		{"phy2/0x1f", "phy2/PhySpecial (0x1f)", register.Width16},
		{"7/Bsr", "phy7/Bsr (0x01)", register.Width16},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := c.resolveTarget(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.label, got.Label())
			assert.Equal(t, tt.width, got.Width())
		})
	}
}

func TestResolveTargetErrors(t *testing.T) {
	c := New(Config{})

	for _, in := range []string{
		"Nope",
		"0x08",
		"0x1ff",
		"phy1/",
		"phy32/Bcr",
		"phyX/Bcr",
		"phy1/Gc1",
		"phy1/0x06",
	} {
		_, err := c.resolveTarget(in)
		assert.Error(t, err, in)
	}
}

func TestFormatWord(t *testing.T) {
	c := New(Config{})

	narrow, err := c.resolveTarget("Gc1")
	require.NoError(t, err)
	assert.Equal(t, "0x0a", narrow.FormatWord(0x0A))

	wide, err := c.resolveTarget("phy1/Bcr")
	require.NoError(t, err)
	assert.Equal(t, "0x000a", wide.FormatWord(0x0A))
}

func TestParseFieldValue(t *testing.T) {
	bit := &register.Field{Name: "b", Lsb: 3, Msb: 3}
	wide := &register.Field{Name: "w", Lsb: 4, Msb: 7}

	for in, want := range map[string]uint16{"on": 1, "TRUE": 1, "set": 1, "off": 0, "clear": 0, "1": 1} {
		got, err := parseFieldValue(bit, in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := parseFieldValue(wide, "0xf")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xF), got)

	_, err = parseFieldValue(wide, "16")
	assert.ErrorContains(t, err, "does not fit w (4 bits)")
	_, err = parseFieldValue(wide, "on")
	assert.Error(t, err, "keywords are for single bits")
}
