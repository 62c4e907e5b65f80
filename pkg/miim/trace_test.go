package miim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/miim"
)

type recorder struct {
	events []log.Event
}

func (r *recorder) Log(e log.Event) { r.events = append(r.events, e) }

func TestTracedRecordsScope(t *testing.T) {
	rec := &recorder{}
	m := miim.New(miim.Traced(miim.NewSim(), rec, log.WithSessionID("mdio")))

	err := m.Phy(0x02).PhySpecial().Modify(func(w *miim.PhySpecialW) { w.ForceLink().Set() })
	require.NoError(t, err)

	require.Len(t, rec.events, 2)
	for _, e := range rec.events {
		assert.Equal(t, log.TierMIIM, e.Tier)
		assert.Equal(t, "mdio", e.SessionID)
		require.NotNil(t, e.Scope)
		assert.Equal(t, uint8(0x02), *e.Scope)
		assert.Equal(t, uint8(0x1F), e.Addr)
		assert.Equal(t, "PhySpecial", e.Register)
		assert.Equal(t, "phy2/0x1f", e.Location())
	}
	assert.Equal(t, log.OpRead, rec.events[0].Op)
	assert.Equal(t, uint16(0x0004), rec.events[0].Value)
	assert.Equal(t, log.OpWrite, rec.events[1].Op)
	assert.Equal(t, uint16(0x000C), rec.events[1].Value)
}

func TestTracedRecordsErrors(t *testing.T) {
	rec := &recorder{}
	tr := miim.Traced(miim.NewSim(), rec)

	err := tr.Write(0x01, 0x06, 0xFFFF)
	require.Error(t, err)

	require.Len(t, rec.events, 1)
	e := rec.events[0]
	assert.True(t, e.Failed())
	assert.Empty(t, e.Register)
	assert.Equal(t, uint16(0xFFFF), e.Value)
}
