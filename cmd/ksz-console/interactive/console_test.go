package interactive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
	"github.com/ksz8863/ksz8863-go/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []log.Event
}

func (r *recorder) Log(e log.Event) { r.events = append(r.events, e) }

func newTestConsole(t *testing.T, cfg Config) (*Console, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg.Out = &buf
	return New(cfg), &buf
}

func TestReadDecodesFields(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("read Gc1"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "Gc1 (0x03) = 0x34", lines[0])
	assert.Contains(t, out.String(), "tx_flow_control")
	assert.Regexp(t, `tx_flow_control\s+true\s+RW`, out.String())
}

func TestReadScopedRegister(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("read phy2/bcr"))
	assert.True(t, strings.HasPrefix(out.String(), "phy2/Bcr (0x00) = 0x1020\n"), out.String())
}

func TestWrite(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("write Gc1 0x80"))
	assert.Equal(t, "Gc1 (0x03) <- 0x80\n", out.String())
	assert.Equal(t, uint8(0x80), c.smiMap.State(smi.AddrGc1).Raw())

	require.NoError(t, c.Exec("write Gc1 default"))
	assert.Equal(t, uint8(0x34), c.smiMap.State(smi.AddrGc1).Raw())

	require.NoError(t, c.Exec("w phy1/Bcr 0x1820"))
	assert.Equal(t, uint16(0x1820), c.sim.Map(1).State(miim.AddrBcr).Raw())
	assert.Equal(t, uint16(0x1020), c.sim.Map(2).State(miim.AddrBcr).Raw(), "PHYs are independent")
}

func TestWriteRejectsWideValue(t *testing.T) {
	c, _ := newTestConsole(t, Config{})

	err := c.Exec("write Gc1 0x100")
	assert.ErrorContains(t, err, "exceeds 8-bit word")
	assert.Equal(t, uint8(0x34), c.smiMap.State(smi.AddrGc1).Raw())

	assert.Error(t, c.Exec("write Gc1 banana"))
	assert.Error(t, c.Exec("write Gc1"))
}

func TestModify(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("modify Gc1 tx_flow_control=false pass_all_frames=1"))
	assert.Equal(t, "Gc1 (0x03): 0x34 -> 0x94\n", out.String())

	out.Reset()
	require.NoError(t, c.Exec("m Gc1 tx_flow_control=default"))
	assert.Equal(t, "Gc1 (0x03): 0x94 -> 0xb4\n", out.String())
}

func TestModifyKeepsOtherFields(t *testing.T) {
	c, _ := newTestConsole(t, Config{})
	require.NoError(t, c.sim.Write(1, 0x00, 0x0000))

	require.NoError(t, c.Exec("modify phy1/Bcr enable_autoneg=on"))
	assert.Equal(t, uint16(0x1000), c.sim.Map(1).State(miim.AddrBcr).Raw())
}

func TestModifyErrors(t *testing.T) {
	c, _ := newTestConsole(t, Config{})
	rec := &recorder{}
	c.smi = smi.New(smi.Traced(c.smiMap, rec))

	tests := []struct {
		line string
		want string
	}{
		{"modify Gc1", "usage"},
		{"modify Gc1 nope=1", `Gc1 has no field "nope"`},
		{"modify ChipId0 family_id=1", "field family_id is read-only"},
		{"modify Gc1 tx_flow_control", "expected <field>=<value>"},
		{"modify ChipId1 start_switch=2", "does not fit start_switch (1 bits)"},
		{"modify Gc1 tx_flow_control=maybe", "invalid value"},
		{"modify Port1Ctrl12 an_enable=default", "field an_enable has no default"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.ErrorContains(t, c.Exec(tt.line), tt.want)
		})
	}
	assert.Empty(t, rec.events, "invalid assignments never touch the bus")
}

func TestFields(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("fields ChipId1"))
	output := out.String()
	assert.True(t, strings.HasPrefix(output, "ChipId1 (0x01), 8-bit: Chip ID and Start Switch\n"), output)
	assert.Regexp(t, `bits 4\.\.7\s+chip_id\s+R\s+default 0x3`, output)
	assert.Regexp(t, `bits 1\.\.3\s+revision_id\s+R\s+default -`, output)
	assert.Contains(t, output, "reset value 0x31, writable mask 0x01")
}

func TestDump(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("dump"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(smi.Addresses()))
	assert.Regexp(t, `^0x00 ChipId0\s+0x88$`, strings.TrimSpace(lines[0]))

	out.Reset()
	require.NoError(t, c.Exec("dump phy1"))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(miim.Addresses()))
	assert.Regexp(t, `^0x01 Bsr\s+0x7808$`, strings.TrimSpace(lines[1]))

	assert.Error(t, c.Exec("dump phy99"))
	assert.Error(t, c.Exec("dump smi phy1"))
}

func TestDiffAndReset(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("diff"))
	assert.Equal(t, "No differences from defaults\n", out.String())

	require.NoError(t, c.Exec("write Gc1 0x30"))
	require.NoError(t, c.Exec("write phy2/PhySpecial 0x000c"))

	out.Reset()
	require.NoError(t, c.Exec("diff"))
	assert.Regexp(t, `smi  0x03 Gc1\s+0x34 -> 0x30`, out.String())
	assert.Regexp(t, `phy2 0x1f PhySpecial\s+0x0004 -> 0x000c`, out.String())

	out.Reset()
	require.NoError(t, c.Exec("diff phy2"))
	assert.NotContains(t, out.String(), "Gc1")
	assert.Contains(t, out.String(), "PhySpecial")

	require.NoError(t, c.Exec("reset phy2"))
	out.Reset()
	require.NoError(t, c.Exec("diff"))
	assert.Contains(t, out.String(), "Gc1")
	assert.NotContains(t, out.String(), "PhySpecial")

	require.NoError(t, c.Exec("reset"))
	out.Reset()
	require.NoError(t, c.Exec("diff"))
	assert.Equal(t, "No differences from defaults\n", out.String())
}

func TestInfo(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("info"))
	assert.Equal(t, "Chip:   family 0x88, id 0x3, revision 0, switch started\n"+
		"PHY 1:  id 0x0022:0x1430, link down, autoneg on\n"+
		"PHY 2:  id 0x0022:0x1430, link down, autoneg on\n", out.String())
}

func TestTypedControls(t *testing.T) {
	c, _ := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("port 1 tx off"))
	p1 := smi.Get[smi.Port1Ctrl2](c.smiMap)
	assert.True(t, p1.Transmit().IsClear())
	assert.True(t, p1.Receive().IsSet())
	assert.Equal(t, uint8(0x02), p1.Raw())

	require.NoError(t, c.Exec("port 3 rx off"))
	assert.True(t, smi.Get[smi.Port3Ctrl2](c.smiMap).Receive().IsClear())
	assert.Error(t, c.Exec("port 4 rx off"))
	assert.Error(t, c.Exec("port 1 up off"))

	require.NoError(t, c.Exec("stop"))
	assert.True(t, smi.Get[smi.ChipId1](c.smiMap).StartSwitch().IsClear())
	require.NoError(t, c.Exec("start"))
	assert.Equal(t, uint8(0x31), smi.Get[smi.ChipId1](c.smiMap).Raw())

	require.NoError(t, c.Exec("forcelink phy2 on"))
	assert.Equal(t, uint16(0x000C), c.sim.Map(2).State(miim.AddrPhySpecial).Raw())
	assert.Equal(t, uint16(0x0004), c.sim.Map(1).State(miim.AddrPhySpecial).Raw())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.json")
	c, out := newTestConsole(t, Config{Store: snapshot.NewStore(path)})

	require.NoError(t, c.Exec("write Gc1 0x30"))
	require.NoError(t, c.Exec("write phy2/Bcr 0x1820"))
	require.NoError(t, c.Exec("save"))
	assert.Contains(t, out.String(), "Saved 3 maps to "+path)

	require.NoError(t, c.Exec("reset all"))
	assert.Equal(t, uint8(0x34), c.smiMap.State(smi.AddrGc1).Raw())

	require.NoError(t, c.Exec("load"))
	assert.Equal(t, uint8(0x30), c.smiMap.State(smi.AddrGc1).Raw())
	assert.Equal(t, uint16(0x1820), c.sim.Map(2).State(miim.AddrBcr).Raw())
	assert.Equal(t, uint16(0x1020), c.sim.Map(1).State(miim.AddrBcr).Raw())
}

func TestLoadResetsMapsMissingFromSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.json")
	c, out := newTestConsole(t, Config{Store: snapshot.NewStore(path)})

	require.NoError(t, c.Exec("save"))
	require.NoError(t, c.Exec("forcelink phy3 on"))
	assert.Equal(t, []uint8{1, 2, 3}, c.sim.PHYs())

	require.NoError(t, c.Exec("load"))
	assert.Equal(t, uint16(0x0004), c.sim.Map(3).State(miim.AddrPhySpecial).Raw())

	out.Reset()
	require.NoError(t, c.Exec("diff"))
	assert.Equal(t, "No differences from defaults\n", out.String())
}

func TestLoadRejectsBadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.json")
	store := snapshot.NewStore(path)
	c, _ := newTestConsole(t, Config{Store: store})

	assert.ErrorContains(t, c.Exec("load"), "no snapshot at")

	f := &snapshot.File{}
	good := snapshot.Capture(smi.NewMap(), nil)
	good.Words[3] = 0x00
	f.Put(good)
	f.Put(snapshot.Entry{Tier: "miim", Scope: nil, Words: make([]uint16, len(miim.Addresses()))})
	require.NoError(t, store.Save(f))

	require.NoError(t, c.Exec("write Gc1 0x30"))
	assert.Error(t, c.Exec("load"))
	assert.Equal(t, uint8(0x30), c.smiMap.State(smi.AddrGc1).Raw(), "no map changes on a bad snapshot")

	f = &snapshot.File{}
	f.Put(snapshot.Entry{Tier: "smi", Words: []uint16{1, 2}})
	require.NoError(t, store.Save(f))
	assert.Error(t, c.Exec("load"))
}

func TestSaveWithoutStore(t *testing.T) {
	c, _ := newTestConsole(t, Config{})
	assert.ErrorContains(t, c.Exec("save"), "-snapshot")
	assert.ErrorContains(t, c.Exec("load"), "-snapshot")
}

func TestTraceSink(t *testing.T) {
	rec := &recorder{}
	c, _ := newTestConsole(t, Config{Trace: rec})

	require.NoError(t, c.Exec("modify phy1/PhySpecial force_link=1"))

	require.Len(t, rec.events, 2)
	assert.Equal(t, log.OpRead, rec.events[0].Op)
	assert.Equal(t, log.OpWrite, rec.events[1].Op)
	assert.Equal(t, "phy1/0x1f", rec.events[1].Location())
	assert.Equal(t, uint16(0x000C), rec.events[1].Value)
	assert.Equal(t, "PhySpecial", rec.events[1].Register)
}

func TestTraceEcho(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	require.NoError(t, c.Exec("read Gc1"))
	assert.NotContains(t, out.String(), "register access")

	require.NoError(t, c.Exec("trace on"))
	out.Reset()
	require.NoError(t, c.Exec("read Gc1"))
	assert.Contains(t, out.String(), "register access")
	assert.Contains(t, out.String(), "register=Gc1")

	require.NoError(t, c.Exec("trace"))
	assert.Contains(t, out.String(), "Trace echo off")
	assert.Error(t, c.Exec("trace maybe"))
}

func TestRunScript(t *testing.T) {
	c, _ := newTestConsole(t, Config{})

	require.NoError(t, c.RunScript("write Gc1 0x30; quit; write Gc1 0x80"))
	assert.Equal(t, uint8(0x30), c.smiMap.State(smi.AddrGc1).Raw(), "lines after quit do not run")

	err := c.RunScript("start; frobnicate; stop")
	assert.ErrorContains(t, err, "frobnicate: unknown command")
	assert.True(t, smi.Get[smi.ChipId1](c.smiMap).StartSwitch().IsSet(), "lines after a failure do not run")

	assert.NoError(t, c.RunScript(""))
}

func TestExecDispatch(t *testing.T) {
	c, out := newTestConsole(t, Config{})

	assert.NoError(t, c.Exec("   "))
	assert.ErrorIs(t, c.Exec("quit"), errQuit)
	assert.ErrorIs(t, c.Exec("EXIT"), errQuit)
	assert.ErrorContains(t, c.Exec("frobnicate"), "unknown command: frobnicate")

	require.NoError(t, c.Exec("help"))
	assert.Contains(t, out.String(), "KSZ8863 Console Commands")
}

func TestRegisterNames(t *testing.T) {
	names := registerNames()
	assert.Contains(t, names, "Gc1")
	assert.Contains(t, names, "phy1/Bcr")
	assert.Contains(t, names, "phy2/PhySpecial")
	assert.Len(t, names, len(smi.Addresses())+2*len(miim.Addresses()))
}
