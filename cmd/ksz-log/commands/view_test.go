package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

func TestFormatSMIRead(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0], false)

	want := "2026-01-28T10:15:32.123456Z [aaaaaaaa] SMI  READ  0x03      Gc1 = 0x34 (1.500us)\n"
	if got := buf.String(); got != want {
		t.Errorf("formatEvent:\n got %q\nwant %q", got, want)
	}
}

func TestFormatMIIMRead(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[2], false)

	output := buf.String()
	for _, want := range []string{"MIIM", "READ", "phy1/0x00", "Bcr = 0x1020"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "(") {
		t.Errorf("zero duration should not be printed, got:\n%s", output)
	}
}

func TestFormatFailedRead(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[3], true)

	output := buf.String()
	if !strings.Contains(output, "phy2/0x1f PhySpecial FAILED: bus fault") {
		t.Errorf("expected failure line, got:\n%s", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("failed reads carry no value to decode, got:\n%s", output)
	}
}

func TestFormatDecode(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0], true)

	output := buf.String()
	if !strings.Contains(output, "\n  Gc1{pass_all_frames: false, port3_tail_tag: false, tx_flow_control: true") {
		t.Errorf("expected decoded fields, got:\n%s", output)
	}
}

func TestFormatUnknownRegister(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, log.Event{Tier: log.TierSMI, Op: log.OpRead, Addr: 0x08, Value: 0xFF}, true)

	output := buf.String()
	if !strings.Contains(output, "0x08      ? = 0xff") {
		t.Errorf("expected placeholder name, got:\n%s", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("undocumented address has no fields, got:\n%s", output)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{800 * time.Nanosecond, "800ns"},
		{1500 * time.Nanosecond, "1.500us"},
		{2500 * time.Microsecond, "2.500ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunViewFilters(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	filter, err := BuildFilter(FilterOptions{Tier: "miim", Phy: "2"})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}

	var buf bytes.Buffer
	if err := RunView(path, ViewOptions{Filter: filter}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "PhySpecial") {
		t.Errorf("expected PhySpecial, got %q", lines[0])
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/trace.klog", ViewOptions{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
