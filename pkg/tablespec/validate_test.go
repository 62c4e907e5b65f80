package tablespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(t *testing.T, data string) []string {
	t.Helper()
	tbl, err := Parse([]byte(data))
	require.NoError(t, err)

	report := Validate(tbl)
	var out []string
	for _, is := range report.Errors {
		out = append(out, is.String())
	}
	return out
}

func TestValidateMinimal(t *testing.T) {
	tbl, err := Parse([]byte(minimal))
	require.NoError(t, err)

	report := Validate(tbl)
	assert.True(t, report.OK(), report.Err())
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "PhySpecial.force_link: writable field has no default, reset leaves it unchanged", report.Warnings[0].String())
	assert.Equal(t, 1, report.ReadOnlyDefaults)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "UnknownTier",
			yaml: "tier: spi\nwidth: 8\nregisters: [{addr: 1, name: A}]",
			want: `unknown tier "spi"`,
		},
		{
			name: "BadPackage",
			yaml: "tier: smi\npackage: my-pkg\nwidth: 8\nregisters: [{addr: 1, name: A}]",
			want: `package "my-pkg" is not a Go identifier`,
		},
		{
			name: "Empty",
			yaml: "tier: smi\nwidth: 8",
			want: "table has no registers",
		},
		{
			name: "ReadOnlyReset",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: f, bits: '0', access: R, default: 1, reset: true}]}]",
			want: "A.f: read-only field cannot be restored by reset",
		},
		{
			name: "ResetWithoutDefault",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: f, bits: '0', access: RW, reset: true}]}]",
			want: "A.f: reset field has no default",
		},
		{
			name: "ReservedAccessor",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: reset, bits: '0', access: RW, default: 0}]}]",
			want: "A.reset: accessor Reset clashes with a register method",
		},
		{
			name: "AccessorCollision",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: a_b, bits: '0', access: R}, {name: aB, bits: '1', access: R}]}]",
			want: "A.aB: accessor AB already used by a_b",
		},
		{
			name: "TypeCollision",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: gc_1}, {addr: 2, name: Gc1}]",
			want: "Gc1: Go name Gc1 already used by gc_1",
		},
		{
			name: "ReservedType",
			yaml: "tier: miim\nwidth: 16\nregisters: [{addr: 1, name: Phy}]",
			want: "Phy: type Phy clashes with a declaration of the tier package",
		},
		{
			name: "BadRow",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: f, bits: '9..', access: R}]}]",
			want: `A: field f: invalid bits "9.."`,
		},
		{
			name: "OutOfRange",
			yaml: "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: f, bits: '4..8', access: R}]}]",
			want: "A.f: bit 8 beyond 8-bit word",
		},
		{
			name: "BadWidth",
			yaml: "tier: smi\nwidth: 32\nregisters: [{addr: 1, name: A}]",
			want: "unsupported width 32",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, messages(t, tt.yaml), tt.want)
		})
	}
}
