package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, events ...Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.klog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		logger.Log(e)
	}
	require.NoError(t, logger.Close())
	return path
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	path := writeTrace(t,
		Event{Timestamp: base, SessionID: "a", Tier: TierSMI, Op: OpRead, Addr: 0x03, Register: "Gc1"},
		Event{Timestamp: base.Add(time.Second), SessionID: "a", Tier: TierSMI, Op: OpWrite, Addr: 0x03, Register: "Gc1"},
		Event{Timestamp: base.Add(2 * time.Second), SessionID: "b", Tier: TierMIIM, Op: OpRead, Scope: phy(1), Addr: 0x00, Register: "Bcr"},
		Event{Timestamp: base.Add(3 * time.Second), SessionID: "b", Tier: TierMIIM, Op: OpWrite, Scope: phy(2), Addr: 0x00, Register: "Bcr", Error: "nack"},
	)

	tier := TierMIIM
	op := OpWrite
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"All", Filter{}, 4},
		{"Session", Filter{SessionID: "a"}, 2},
		{"Tier", Filter{Tier: &tier}, 2},
		{"Op", Filter{Op: &op}, 2},
		{"Scope", Filter{Scope: phy(1)}, 1},
		{"Register", Filter{Register: "Gc1"}, 2},
		{"ErrorsOnly", Filter{ErrorsOnly: true}, 1},
		{"TimeWindow", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"Combined", Filter{Tier: &tier, Op: &op, ErrorsOnly: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := ReadAll(path, tt.filter)
			require.NoError(t, err)
			assert.Len(t, events, tt.want)
		})
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.klog"))
	assert.Error(t, err)

	_, err = ReadAll(filepath.Join(t.TempDir(), "missing.klog"), Filter{})
	assert.Error(t, err)
}
