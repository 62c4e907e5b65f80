package tablespec

import "testing"

func TestGoName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tx_flow_control", "TxFlowControl"},
		{"mii_10_bt", "Mii10Bt"},
		{"tag_0x3", "Tag0x3"},
		{"default_tag_15_8", "DefaultTag15_8"},
		{"port3_tail_tag", "Port3TailTag"},
		{"Gc1", "Gc1"},
		{"PhyIdR1", "PhyIdR1"},
		{"data", "Data"},
		{"__odd__name", "OddName"},
	}
	for _, tt := range tests {
		got := GoName(tt.in)
		if got != tt.want {
			t.Errorf("GoName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
