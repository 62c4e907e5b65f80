package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phy(n uint8) *uint8 { return &n }

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	events := []Event{
		{
			Timestamp: ts,
			SessionID: "8e0f6a2c-3f0b-4d8e-9a51-6f4f3f0c2b1a",
			Tier:      TierSMI,
			Op:        OpWrite,
			Addr:      0x03,
			Register:  "Gc1",
			Value:     0x34,
			Duration:  1500 * time.Microsecond,
		},
		{
			Timestamp: ts,
			SessionID: "s",
			Tier:      TierMIIM,
			Op:        OpRead,
			Scope:     phy(2),
			Addr:      0x1F,
			Register:  "PhySpecial",
			Error:     "bus fault",
		},
	}

	for _, want := range events {
		data, err := EncodeEvent(want)
		require.NoError(t, err)

		got, err := DecodeEvent(data)
		require.NoError(t, err)
		assert.True(t, want.Timestamp.Equal(got.Timestamp), "nanosecond timestamp preserved")
		got.Timestamp = want.Timestamp
		assert.Equal(t, want, got)
	}
}

func TestEventOmitsEmptyFields(t *testing.T) {
	data, err := EncodeEvent(Event{Tier: TierSMI, Op: OpRead, Addr: 1})
	require.NoError(t, err)

	var raw map[int]any
	require.NoError(t, decMode.Unmarshal(data, &raw))
	assert.NotContains(t, raw, 5, "scope")
	assert.NotContains(t, raw, 7, "register")
	assert.NotContains(t, raw, 10, "error")
	assert.Contains(t, raw, 8, "value is always present")
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte{0xFF, 0x00})
	assert.Error(t, err)
}

func TestTierAndOp(t *testing.T) {
	assert.Equal(t, "SMI", TierSMI.String())
	assert.Equal(t, "MIIM", TierMIIM.String())
	assert.Equal(t, "UNKNOWN", Tier(9).String())
	assert.Equal(t, "READ", OpRead.String())
	assert.Equal(t, "WRITE", OpWrite.String())
	assert.Equal(t, "UNKNOWN", Op(9).String())

	tier, err := ParseTier("MIIM")
	require.NoError(t, err)
	assert.Equal(t, TierMIIM, tier)
	_, err = ParseTier("spi")
	assert.Error(t, err)

	op, err := ParseOp("w")
	require.NoError(t, err)
	assert.Equal(t, OpWrite, op)
	_, err = ParseOp("erase")
	assert.Error(t, err)
}

func TestEventLocation(t *testing.T) {
	assert.Equal(t, "0x03", Event{Addr: 3}.Location())
	assert.Equal(t, "phy1/0x1f", Event{Addr: 0x1F, Scope: phy(1)}.Location())
	assert.True(t, Event{Error: "x"}.Failed())
	assert.False(t, Event{}.Failed())
}

func TestTracerRecord(t *testing.T) {
	var got []Event
	logger := loggerFunc(func(e Event) { got = append(got, e) })

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracer(logger, TierMIIM,
		WithSessionID("session-1"),
		WithClock(func() time.Time {
			clock = clock.Add(time.Millisecond)
			return clock
		}))

	start := tr.Start()
	tr.Record(OpRead, phy(1), 0x01, "Bsr", 0x7809, start, nil)
	start = tr.Start()
	tr.Record(OpWrite, phy(2), 0x00, "Bcr", 0x1020, start, errors.New("nack"))

	require.Len(t, got, 2)
	assert.Equal(t, "session-1", got[0].SessionID)
	assert.Equal(t, TierMIIM, got[0].Tier)
	assert.Equal(t, time.Millisecond, got[0].Duration)
	assert.Equal(t, uint16(0x7809), got[0].Value)
	assert.Equal(t, "", got[0].Error)
	assert.Equal(t, "nack", got[1].Error)
	assert.Equal(t, uint8(2), *got[1].Scope)
}

func TestTracerDefaults(t *testing.T) {
	a := NewTracer(nil, TierSMI)
	b := NewTracer(nil, TierSMI)
	assert.Len(t, a.SessionID(), 36)
	assert.NotEqual(t, a.SessionID(), b.SessionID())

	// A nil logger discards.
	a.Record(OpRead, nil, 0, "", 0, a.Start(), nil)
}

type loggerFunc func(Event)

func (f loggerFunc) Log(e Event) { f(e) }
