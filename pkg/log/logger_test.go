package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
	logger.Log(Event{Error: "ignored"})
}

func TestMultiLoggerFansOut(t *testing.T) {
	var a, b []Event
	m := NewMultiLogger(
		loggerFunc(func(e Event) { a = append(a, e) }),
		nil,
		loggerFunc(func(e Event) { b = append(b, e) }),
	)

	m.Log(Event{Addr: 1})
	m.Log(Event{Addr: 2})

	assert.Len(t, a, 2)
	assert.Len(t, b, 2)
	assert.Equal(t, uint8(2), b[1].Addr)
}

func slogEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "s-1",
		Tier:      TierSMI,
		Op:        OpWrite,
		Addr:      0x03,
		Register:  "Gc1",
		Value:     0x34,
		Duration:  2 * time.Millisecond,
	})
	adapter.Log(Event{
		SessionID: "s-1",
		Tier:      TierMIIM,
		Op:        OpRead,
		Scope:     phy(1),
		Addr:      0x01,
		Error:     "timeout",
	})

	entries := slogEntries(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "register access", entries[0]["msg"])
	assert.Equal(t, "SMI", entries[0]["tier"])
	assert.Equal(t, "WRITE", entries[0]["op"])
	assert.Equal(t, "0x03", entries[0]["addr"])
	assert.Equal(t, "Gc1", entries[0]["register"])
	assert.Equal(t, "0x0034", entries[0]["value"])

	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, "phy1/0x01", entries[1]["addr"])
	assert.Equal(t, "timeout", entries[1]["error"])
	assert.NotContains(t, entries[1], "value", "failed reads carry no value")
	assert.NotContains(t, entries[1], "register")
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{Op: OpRead})
	assert.Empty(t, buf.String())

	adapter.Log(Event{Op: OpRead, Error: "nack"})
	assert.Contains(t, buf.String(), "error=nack")
}
