package ksz8863_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksz8863/ksz8863-go/cmd/ksz-console/interactive"
	"github.com/ksz8863/ksz8863-go/cmd/ksz-log/commands"
	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
	"github.com/ksz8863/ksz8863-go/pkg/snapshot"
)

// TestE2E_TracedSession drives both tiers through traced transports into a
// trace file and analyzes the file with the ksz-log commands.
func TestE2E_TracedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.klog")
	fl, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("Failed to create trace file: %v", err)
	}

	smiMap := smi.NewMap()
	sim := miim.NewSim()
	s := smi.New(smi.Traced(smiMap, fl, log.WithSessionID("smi-session")))
	m := miim.New(miim.Traced(sim, fl, log.WithSessionID("miim-session")))

	// Direct tier: one read-modify-write and one write over defaults.
	if err := s.Gc1().Modify(func(w *smi.Gc1W) { w.TxFlowControl().Clear() }); err != nil {
		t.Fatalf("Gc1 modify failed: %v", err)
	}
	if err := s.Port1Ctrl2().Write(func(w *smi.Port1Ctrl2W) { w.Receive().Clear() }); err != nil {
		t.Fatalf("Port1Ctrl2 write failed: %v", err)
	}

	// Scoped tier: the same register on two PHYs.
	for _, phy := range miim.DefaultPHYAddrs {
		err := m.Phy(phy).PhySpecial().Modify(func(w *miim.PhySpecialW) { w.ForceLink().Bit(phy == 2) })
		if err != nil {
			t.Fatalf("PhySpecial modify on phy %d failed: %v", phy, err)
		}
	}

	if err := fl.Close(); err != nil {
		t.Fatalf("Failed to close trace file: %v", err)
	}
	if fl.Written() != 7 {
		t.Errorf("Expected 7 events written, got %d", fl.Written())
	}

	// Device state
	if got := smi.Get[smi.Gc1](smiMap).Raw(); got != 0x14 {
		t.Errorf("Gc1 = %#x, want 0x14", got)
	}
	if got := smi.Get[smi.Port1Ctrl2](smiMap).Raw(); got != 0x04 {
		t.Errorf("Port1Ctrl2 = %#x, want 0x04", got)
	}
	if !miim.Get[miim.PhySpecial](sim.Map(2)).ForceLink().IsSet() {
		t.Error("Expected force link on phy 2")
	}
	if miim.Get[miim.PhySpecial](sim.Map(1)).ForceLink().IsSet() {
		t.Error("Expected no force link on phy 1")
	}

	// Trace analysis
	writes, err := log.ReadAll(path, log.Filter{Op: ptr(log.OpWrite)})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(writes) != 4 {
		t.Fatalf("Expected 4 writes, got %d", len(writes))
	}
	if writes[3].Location() != "phy2/0x1f" || writes[3].Value != 0x000C {
		t.Errorf("Unexpected last write: %s = %#x", writes[3].Location(), writes[3].Value)
	}

	var stats bytes.Buffer
	if err := commands.RunStats(path, &stats); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	for _, want := range []string{"Total Events: 7", "Sessions: 2", "[smi-sess] SMI, 3 events", "PHYs: [1 2]"} {
		if !strings.Contains(stats.String(), want) {
			t.Errorf("Expected stats to contain %q, got:\n%s", want, stats.String())
		}
	}

	filtered := filepath.Join(t.TempDir(), "miim.klog")
	n, err := commands.RunFilter(path, commands.FilterOptions{Output: filtered, Tier: "miim", Phy: "2"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 events for phy 2, got %d", n)
	}
}

// TestE2E_SnapshotRestore saves modified maps and restores them into a
// fresh simulation.
func TestE2E_SnapshotRestore(t *testing.T) {
	store := snapshot.NewStore(filepath.Join(t.TempDir(), "state", "switch.json"))

	smiMap := smi.NewMap()
	sim := miim.NewSim()
	smi.Update[smi.ChipId1](smiMap, func(w *smi.ChipId1W) { w.StartSwitch().Clear() })
	miim.Update[miim.Bcr](sim.Map(1), func(w *miim.BcrW) { w.PowerDown().Set() })

	f := &snapshot.File{}
	f.Put(snapshot.Capture(smiMap, nil))
	for _, phy := range sim.PHYs() {
		f.Put(snapshot.Capture(sim.Map(phy).Map, &phy))
	}
	if err := store.Save(f); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil || len(loaded.Maps) != 2 {
		t.Fatalf("Expected 2 maps, got %+v", loaded)
	}

	restoredSMI := smi.NewMap()
	e, ok := loaded.Find("smi", nil)
	if !ok {
		t.Fatal("SMI entry missing")
	}
	if err := snapshot.Restore(e, restoredSMI); err != nil {
		t.Fatalf("Restore SMI failed: %v", err)
	}
	if !restoredSMI.Equal(smiMap) {
		t.Errorf("Restored SMI map differs at %v", restoredSMI.Diff(smiMap))
	}

	phy := uint8(1)
	e, ok = loaded.Find("miim", &phy)
	if !ok {
		t.Fatal("PHY 1 entry missing")
	}
	restoredPHY := miim.NewMap()
	if err := snapshot.Restore(e, restoredPHY.Map); err != nil {
		t.Fatalf("Restore PHY failed: %v", err)
	}
	if !restoredPHY.Equal(sim.Map(1)) {
		t.Errorf("Restored PHY map differs at %v", restoredPHY.Diff(sim.Map(1)))
	}

	// Entries are tier bound.
	if err := snapshot.Restore(e, smi.NewMap()); err == nil {
		t.Error("Expected tier mismatch restoring a PHY entry into an SMI map")
	}
}

// TestE2E_ConsoleScript runs a console script against a trace file and a
// snapshot, the way ksz-console -exec does.
func TestE2E_ConsoleScript(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "console.klog")
	fl, err := log.NewFileLogger(tracePath)
	if err != nil {
		t.Fatalf("Failed to create trace file: %v", err)
	}

	var out bytes.Buffer
	store := snapshot.NewStore(filepath.Join(dir, "console.json"))
	console := interactive.New(interactive.Config{Out: &out, Trace: fl, Store: store})

	for _, line := range []string{
		"port 2 tx off",
		"modify phy1/Anar adv_pause=off",
		"save",
	} {
		if err := console.Exec(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	fl.Close()

	// A second console picks the state up from the snapshot.
	var out2 bytes.Buffer
	second := interactive.New(interactive.Config{Out: &out2, Store: store})
	if err := second.Exec("load"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := second.Exec("diff"); err != nil {
		t.Fatalf("diff: %v", err)
	}
	for _, want := range []string{"Port2Ctrl2", "Anar"} {
		if !strings.Contains(out2.String(), want) {
			t.Errorf("Expected diff to list %s, got:\n%s", want, out2.String())
		}
	}

	var view bytes.Buffer
	if err := commands.RunView(tracePath, commands.ViewOptions{}, &view); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if got := strings.Count(view.String(), "\n"); got != 4 {
		t.Errorf("Expected 4 traced accesses, got %d:\n%s", got, view.String())
	}
}

func ptr[T any](v T) *T { return &v }
