package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
)

func phy(n uint8) *uint8 { return &n }

func TestStore(t *testing.T) {
	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "nonexistent.json"))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "sub", "snap.json"))

		f := &File{}
		f.Put(Entry{Tier: "smi", Words: []uint16{1, 2, 3}})
		f.Put(Entry{Tier: "miim", Scope: phy(1), Words: []uint16{0x1020}})
		require.NoError(t, store.Save(f))
		assert.Equal(t, FileVersion, f.Version)
		assert.False(t, f.SavedAt.IsZero())

		got, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, f.Maps, got.Maps)
		assert.WithinDuration(t, f.SavedAt, got.SavedAt, time.Second)
	})

	t.Run("Clear", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snap.json")
		store := NewStore(path)

		require.NoError(t, store.Save(&File{}))
		require.NoError(t, store.Clear())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, store.Clear(), "clearing twice is fine")
	})

	t.Run("Corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snap.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, err := NewStore(path).Load()
		assert.Error(t, err)
	})

	t.Run("FutureVersion", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snap.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 99}`), 0644))

		_, err := NewStore(path).Load()
		assert.ErrorContains(t, err, "unsupported snapshot version 99")
	})
}

func TestFilePutAndFind(t *testing.T) {
	f := &File{}
	f.Put(Entry{Tier: "miim", Scope: phy(1), Words: []uint16{1}})
	f.Put(Entry{Tier: "miim", Scope: phy(2), Words: []uint16{2}})
	f.Put(Entry{Tier: "miim", Scope: phy(1), Words: []uint16{3}})
	require.Len(t, f.Maps, 2)

	e, ok := f.Find("miim", phy(1))
	require.True(t, ok)
	assert.Equal(t, []uint16{3}, e.Words)

	_, ok = f.Find("miim", nil)
	assert.False(t, ok)
	_, ok = f.Find("smi", nil)
	assert.False(t, ok)
}

func TestCaptureRestoreSMI(t *testing.T) {
	m := smi.NewMap()
	smi.Update[smi.Gc1](m, func(w *smi.Gc1W) { w.PassAllFrames().Set() })

	e := Capture(m, nil)
	assert.Equal(t, "smi", e.Tier)
	assert.Nil(t, e.Scope)
	assert.Len(t, e.Words, len(smi.Addresses()))

	got := smi.NewMap()
	require.NoError(t, Restore(e, got))
	assert.True(t, m.Equal(got))
}

func TestCaptureRestoreMIIM(t *testing.T) {
	sim := miim.NewSim()
	require.NoError(t, sim.Write(2, 0x00, 0x0100))

	e := Capture(sim.Map(2).Map, phy(2))
	assert.Equal(t, "miim", e.Tier)
	require.NotNil(t, e.Scope)
	assert.Equal(t, uint8(2), *e.Scope)

	got := miim.NewMap()
	require.NoError(t, Restore(e, got.Map))
	assert.Equal(t, uint16(0x0100), got.State(miim.AddrBcr).Raw())
}

func TestRestoreErrors(t *testing.T) {
	smiEntry := Capture(smi.NewMap(), nil)

	t.Run("TierMismatch", func(t *testing.T) {
		err := Restore(smiEntry, miim.NewMap().Map)
		assert.ErrorIs(t, err, ErrTierMismatch)
	})

	t.Run("Length", func(t *testing.T) {
		e := Entry{Tier: "smi", Words: []uint16{1, 2}}
		err := Restore(e, smi.NewMap())
		assert.ErrorIs(t, err, register.ErrSnapshotLength)
	})

	t.Run("Overflow", func(t *testing.T) {
		e := Capture(smi.NewMap(), nil)
		e.Words[0] = 0x100
		m := smi.NewMap()
		assert.Error(t, Restore(e, m))
		assert.True(t, m.Equal(smi.NewMap()), "map untouched")
	})
}
