package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

func TestStatsCounts(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	stats, err := collectStats(path)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}

	if stats.TotalEvents != 4 {
		t.Errorf("expected 4 events, got %d", stats.TotalEvents)
	}
	if stats.EventsByTier[log.TierSMI] != 2 || stats.EventsByTier[log.TierMIIM] != 2 {
		t.Errorf("unexpected tier counts: %v", stats.EventsByTier)
	}
	if stats.EventsByOp[log.OpRead] != 3 || stats.EventsByOp[log.OpWrite] != 1 {
		t.Errorf("unexpected op counts: %v", stats.EventsByOp)
	}
	if stats.Errors != 1 {
		t.Errorf("expected 1 error, got %d", stats.Errors)
	}

	gc1 := stats.Registers["Gc1"]
	if gc1 == nil || gc1.Reads != 1 || gc1.Writes != 1 {
		t.Errorf("unexpected Gc1 stats: %+v", gc1)
	}
	if ps := stats.Registers["PhySpecial"]; ps == nil || ps.Errors != 1 {
		t.Errorf("unexpected PhySpecial stats: %+v", ps)
	}

	miim := stats.Sessions["bbbbbbbb-2222-4222-8222-222222222222"]
	if miim == nil || miim.Events != 2 || len(miim.PHYs) != 2 {
		t.Errorf("unexpected MIIM session stats: %+v", miim)
	}
	if d := stats.TimeRange.End.Sub(stats.TimeRange.Start); d != 3*time.Millisecond {
		t.Errorf("expected 3ms range, got %v", d)
	}
}

func TestStatsUndocumentedRegister(t *testing.T) {
	path := createTestLogFile(t, []log.Event{
		{Timestamp: baseTime, SessionID: "s", Tier: log.TierSMI, Op: log.OpRead, Addr: 0x08},
	})

	stats, err := collectStats(path)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}
	if _, ok := stats.Registers["SMI 0x08"]; !ok {
		t.Errorf("expected fallback key, got %v", stats.Registers)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Total Events: 4",
		"SMI:         2",
		"WRITE:       1",
		"Sessions: 2",
		"[bbbbbbbb] MIIM, 2 events",
		"PHYs: [1 2]",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	if strings.Index(output, "Gc1") > strings.Index(output, "Bcr") {
		t.Errorf("registers should be ordered by access count, got:\n%s", output)
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Errorf("empty trace has no time range:\n%s", buf.String())
	}
}
