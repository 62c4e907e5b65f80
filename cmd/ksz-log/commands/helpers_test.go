package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.klog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	return path
}

func phy(n uint8) *uint8 { return &n }

var baseTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

// sampleEvents is one SMI session and one MIIM session touching two PHYs.
func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: baseTime,
			SessionID: "aaaaaaaa-1111-4111-8111-111111111111",
			Tier:      log.TierSMI,
			Op:        log.OpRead,
			Addr:      0x03,
			Register:  "Gc1",
			Value:     0x34,
			Duration:  1500 * time.Nanosecond,
		},
		{
			Timestamp: baseTime.Add(time.Millisecond),
			SessionID: "aaaaaaaa-1111-4111-8111-111111111111",
			Tier:      log.TierSMI,
			Op:        log.OpWrite,
			Addr:      0x03,
			Register:  "Gc1",
			Value:     0x30,
		},
		{
			Timestamp: baseTime.Add(2 * time.Millisecond),
			SessionID: "bbbbbbbb-2222-4222-8222-222222222222",
			Tier:      log.TierMIIM,
			Op:        log.OpRead,
			Scope:     phy(1),
			Addr:      0x00,
			Register:  "Bcr",
			Value:     0x1020,
		},
		{
			Timestamp: baseTime.Add(3 * time.Millisecond),
			SessionID: "bbbbbbbb-2222-4222-8222-222222222222",
			Tier:      log.TierMIIM,
			Op:        log.OpRead,
			Scope:     phy(2),
			Addr:      0x1F,
			Register:  "PhySpecial",
			Error:     "bus fault",
		},
	}
}
