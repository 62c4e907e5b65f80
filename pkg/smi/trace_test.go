package smi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
)

type recorder struct {
	events []log.Event
}

func (r *recorder) Log(e log.Event) { r.events = append(r.events, e) }

func TestTracedRecordsEachPrimitive(t *testing.T) {
	rec := &recorder{}
	m := smi.NewMap()
	s := smi.New(smi.Traced(m, rec, log.WithSessionID("session-1")))

	require.NoError(t, s.Gc1().Modify(func(w *smi.Gc1W) { w.Aging().Clear() }))

	require.Len(t, rec.events, 2)
	read, write := rec.events[0], rec.events[1]

	assert.Equal(t, log.OpRead, read.Op)
	assert.Equal(t, log.TierSMI, read.Tier)
	assert.Equal(t, "session-1", read.SessionID)
	assert.Equal(t, uint8(0x03), read.Addr)
	assert.Equal(t, "Gc1", read.Register)
	assert.Equal(t, uint16(0x34), read.Value)
	assert.Nil(t, read.Scope)

	assert.Equal(t, log.OpWrite, write.Op)
	assert.Equal(t, uint16(0x30), write.Value)
	assert.False(t, write.Failed())
}

func TestTracedRecordsErrors(t *testing.T) {
	rec := &recorder{}
	tr := smi.Traced(smi.NewMap(), rec)

	_, err := tr.Read(0x08)
	require.Error(t, err)

	require.Len(t, rec.events, 1)
	e := rec.events[0]
	assert.True(t, e.Failed())
	assert.Equal(t, err.Error(), e.Error)
	assert.Empty(t, e.Register)
	assert.Equal(t, uint16(0), e.Value)
	assert.NotEmpty(t, e.SessionID)
}

func TestTracedWithNilLogger(t *testing.T) {
	tr := smi.Traced(smi.NewMap(), nil)
	assert.NoError(t, tr.Write(0x03, 0x00))
}
