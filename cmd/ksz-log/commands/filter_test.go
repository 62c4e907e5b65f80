package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

func TestBuildFilter(t *testing.T) {
	f, err := BuildFilter(FilterOptions{
		SessionID:  "abc",
		Tier:       "SMI",
		Op:         "w",
		Phy:        "0x02",
		Register:   "Gc1",
		ErrorsOnly: true,
		TimeStart:  "2026-01-28T10:00:00Z",
		TimeEnd:    "2026-01-28T11:00:00Z",
	})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}

	if f.SessionID != "abc" || f.Register != "Gc1" || !f.ErrorsOnly {
		t.Errorf("plain fields not copied: %+v", f)
	}
	if f.Tier == nil || *f.Tier != log.TierSMI {
		t.Errorf("expected tier SMI, got %v", f.Tier)
	}
	if f.Op == nil || *f.Op != log.OpWrite {
		t.Errorf("expected op WRITE, got %v", f.Op)
	}
	if f.Scope == nil || *f.Scope != 2 {
		t.Errorf("expected phy 2, got %v", f.Scope)
	}
	if f.TimeStart == nil || f.TimeEnd == nil || f.TimeEnd.Sub(*f.TimeStart) != time.Hour {
		t.Errorf("unexpected time window: %v..%v", f.TimeStart, f.TimeEnd)
	}
}

func TestBuildFilterEmptyMatchesAll(t *testing.T) {
	f, err := BuildFilter(FilterOptions{})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	for _, e := range sampleEvents() {
		if !f.Match(e) {
			t.Errorf("empty filter rejected %+v", e)
		}
	}
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"Tier", FilterOptions{Tier: "mdio"}},
		{"Op", FilterOptions{Op: "erase"}},
		{"PhyRange", FilterOptions{Phy: "32"}},
		{"PhySyntax", FilterOptions{Phy: "one"}},
		{"TimeStart", FilterOptions{TimeStart: "yesterday"}},
		{"TimeEnd", FilterOptions{TimeEnd: "tomorrow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildFilter(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunFilterBySession(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.klog")

	n, err := RunFilter(path, FilterOptions{
		Output:    outPath,
		SessionID: "bbbbbbbb-2222-4222-8222-222222222222",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}

	events, err := log.ReadAll(outPath, log.Filter{})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events in output, got %d", len(events))
	}
	for _, e := range events {
		if e.Tier != log.TierMIIM {
			t.Errorf("expected MIIM event, got %v", e.Tier)
		}
	}
}

func TestRunFilterErrorsOnly(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.klog")

	n, err := RunFilter(path, FilterOptions{Output: outPath, ErrorsOnly: true})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 event, got %d", n)
	}
}

func TestRunFilterByTimeRange(t *testing.T) {
	events := sampleEvents()
	for i := range events {
		events[i].Timestamp = baseTime.Add(time.Duration(i) * time.Hour)
	}
	path := createTestLogFile(t, events)
	outPath := filepath.Join(t.TempDir(), "out.klog")

	n, err := RunFilter(path, FilterOptions{
		Output:    outPath,
		TimeStart: baseTime.Add(time.Hour).Format(time.RFC3339),
		TimeEnd:   baseTime.Add(3 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events in window, got %d", n)
	}
}

func TestRunFilterRejectsBadOptions(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	_, err := RunFilter(path, FilterOptions{Output: filepath.Join(t.TempDir(), "out.klog"), Tier: "mdio"})
	if err == nil {
		t.Error("expected error for invalid tier")
	}
}
