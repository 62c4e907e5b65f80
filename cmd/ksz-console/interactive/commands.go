package interactive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
	"github.com/ksz8863/ksz8863-go/pkg/snapshot"
)

// cmdRead handles the read command.
func (c *Console) cmdRead(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: read <reg>")
	}
	t, err := c.resolveTarget(args[0])
	if err != nil {
		return err
	}
	v, err := t.read()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s = %s\n", t.Label(), t.FormatWord(v))
	for _, fv := range t.layout.Decode(v) {
		fmt.Fprintf(c.out, "  %-28s %-6s %s\n", fv.Name, formatFieldValue(fv), fv.Access)
	}
	return nil
}

func formatFieldValue(fv register.FieldValue) string {
	if fv.Bit {
		return fmt.Sprintf("%t", fv.Value != 0)
	}
	return fmt.Sprintf("%#x", fv.Value)
}

// cmdWrite handles the write command.
func (c *Console) cmdWrite(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: write <reg> <value|default>")
	}
	t, err := c.resolveTarget(args[0])
	if err != nil {
		return err
	}

	var v uint16
	if strings.EqualFold(args[1], "default") {
		v = t.layout.DefaultRaw()
	} else if v, err = parseWord(args[1]); err != nil {
		return err
	}

	if err := t.write(v); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s <- %s\n", t.Label(), t.FormatWord(v))
	return nil
}

// cmdModify handles the modify command. Assignments are checked before the
// register is read.
func (c *Console) cmdModify(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: modify <reg> <field>=<value> ...")
	}
	t, err := c.resolveTarget(args[0])
	if err != nil {
		return err
	}

	type assignment struct {
		f *register.Field
		v uint16
	}
	assignments := make([]assignment, 0, len(args)-1)
	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected <field>=<value>, got %q", arg)
		}
		f, ok := t.layout.Field(name)
		if !ok {
			return fmt.Errorf("%s has no field %q", t.layout.Name, name)
		}
		if !f.Access.CanWrite() {
			return fmt.Errorf("field %s is read-only", f.Name)
		}
		var v uint16
		if strings.EqualFold(value, "default") {
			if !f.HasDefault {
				return fmt.Errorf("field %s has no default", f.Name)
			}
			v = f.Default
		} else if v, err = parseFieldValue(f, value); err != nil {
			return err
		}
		assignments = append(assignments, assignment{f, v})
	}

	before, err := t.read()
	if err != nil {
		return err
	}
	after := before
	for _, a := range assignments {
		after = a.f.Put(after, a.v)
	}
	if err := t.write(after); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s: %s -> %s\n", t.Label(), t.FormatWord(before), t.FormatWord(after))
	return nil
}

// cmdFields handles the fields command.
func (c *Console) cmdFields(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fields <reg>")
	}
	t, err := c.resolveTarget(args[0])
	if err != nil {
		return err
	}

	l := t.layout
	fmt.Fprintf(c.out, "%s, %s", t.Label(), l.Width)
	if l.Doc != "" {
		fmt.Fprintf(c.out, ": %s", l.Doc)
	}
	fmt.Fprintln(c.out)
	for i := range l.Fields {
		f := &l.Fields[i]
		def := "-"
		if f.HasDefault {
			def = fmt.Sprintf("%#x", f.Default)
		}
		fmt.Fprintf(c.out, "  bits %-6s %-28s %-2s default %s\n", f.Range(), f.Name, f.Access, def)
	}
	fmt.Fprintf(c.out, "  reset value %s, writable mask %s\n", t.FormatWord(l.DefaultRaw()), t.FormatWord(l.WritableMask()))
	return nil
}

// cmdDump handles the dump command. Every register is read through the
// transport, so dumps show up in traces.
func (c *Console) cmdDump(args []string) error {
	scope, err := parseTier(args)
	if err != nil {
		return err
	}

	if scope == nil {
		for _, a := range smi.Addresses() {
			st, err := c.smi.Read(a)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "  0x%02x %-30s 0x%02x\n", uint8(a), a.Layout().Name, st.Raw())
		}
		return nil
	}

	p := c.miim.Phy(*scope)
	for _, a := range miim.Addresses() {
		st, err := p.Read(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "  0x%02x %-30s 0x%04x\n", uint8(a), a.Layout().Name, st.Raw())
	}
	return nil
}

// cmdDiff handles the diff command. It inspects the simulated maps
// directly, without transport access.
func (c *Console) cmdDiff(args []string) error {
	var (
		scope *uint8
		err   error
		all   = len(args) == 0
	)
	if !all {
		if scope, err = parseTier(args); err != nil {
			return err
		}
	}

	n := 0
	if all || scope == nil {
		for _, a := range c.smiMap.Diff(smi.NewMap()) {
			def := smi.DefaultState(a).Raw()
			cur := c.smiMap.State(a).Raw()
			fmt.Fprintf(c.out, "  smi  0x%02x %-30s 0x%02x -> 0x%02x\n", uint8(a), a.Layout().Name, def, cur)
			n++
		}
	}

	phys := c.sim.PHYs()
	if scope != nil {
		phys = []uint8{*scope}
	}
	if all || scope != nil {
		for _, phy := range phys {
			m := c.sim.Map(phy)
			for _, a := range m.Diff(miim.NewMap()) {
				def := miim.DefaultState(a).Raw()
				cur := m.State(a).Raw()
				fmt.Fprintf(c.out, "  phy%d 0x%02x %-30s 0x%04x -> 0x%04x\n", phy, uint8(a), a.Layout().Name, def, cur)
				n++
			}
		}
	}

	if n == 0 {
		fmt.Fprintln(c.out, "No differences from defaults")
	}
	return nil
}

// cmdInfo handles the info command.
func (c *Console) cmdInfo() error {
	id0, err := c.smi.ChipId0().Read()
	if err != nil {
		return err
	}
	id1, err := c.smi.ChipId1().Read()
	if err != nil {
		return err
	}
	state := "stopped"
	if id1.StartSwitch().IsSet() {
		state = "started"
	}
	fmt.Fprintf(c.out, "Chip:   family 0x%02x, id 0x%x, revision %d, switch %s\n",
		id0.FamilyId().Bits(), id1.ChipId().Bits(), id1.RevisionId().Bits(), state)

	for _, phy := range c.sim.PHYs() {
		p := c.miim.Phy(phy)
		r1, err := p.PhyIdR1().Read()
		if err != nil {
			return err
		}
		r2, err := p.PhyIdR2().Read()
		if err != nil {
			return err
		}
		bcr, err := p.Bcr().Read()
		if err != nil {
			return err
		}
		bsr, err := p.Bsr().Read()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "PHY %d:  id 0x%04x:0x%04x, link %s, autoneg %s\n",
			phy, r1.Raw(), r2.Raw(), upDown(bsr.LinkStatus().IsSet()), onOff(bcr.EnableAutoneg().IsSet()))
	}
	return nil
}

// cmdSwitch handles the start and stop commands.
func (c *Console) cmdSwitch(start bool) error {
	err := c.smi.ChipId1().Modify(func(w *smi.ChipId1W) { w.StartSwitch().Bit(start) })
	if err != nil {
		return err
	}
	if start {
		fmt.Fprintln(c.out, "Switch started")
	} else {
		fmt.Fprintln(c.out, "Switch stopped")
	}
	return nil
}

// cmdPort handles the port command.
func (c *Console) cmdPort(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: port <1|2|3> <tx|rx> <on|off>")
	}
	tx, err := parseDirection(args[1])
	if err != nil {
		return err
	}
	on, err := parseOnOff(args[2])
	if err != nil {
		return err
	}

	switch args[0] {
	case "1":
		err = c.smi.Port1Ctrl2().Modify(func(w *smi.Port1Ctrl2W) {
			if tx {
				w.Transmit().Bit(on)
			} else {
				w.Receive().Bit(on)
			}
		})
	case "2":
		err = c.smi.Port2Ctrl2().Modify(func(w *smi.Port2Ctrl2W) {
			if tx {
				w.Transmit().Bit(on)
			} else {
				w.Receive().Bit(on)
			}
		})
	case "3":
		err = c.smi.Port3Ctrl2().Modify(func(w *smi.Port3Ctrl2W) {
			if tx {
				w.Transmit().Bit(on)
			} else {
				w.Receive().Bit(on)
			}
		})
	default:
		return fmt.Errorf("invalid port %q (must be 1, 2 or 3)", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Port %s %s %s\n", args[0], strings.ToLower(args[1]), onOff(on))
	return nil
}

// cmdForceLink handles the forcelink command.
func (c *Console) cmdForceLink(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: forcelink <phyN> <on|off>")
	}
	phy, err := parsePHY(args[0])
	if err != nil {
		return err
	}
	on, err := parseOnOff(args[1])
	if err != nil {
		return err
	}
	err = c.miim.Phy(phy).PhySpecial().Modify(func(w *miim.PhySpecialW) { w.ForceLink().Bit(on) })
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "PHY %d force link %s\n", phy, onOff(on))
	return nil
}

// cmdReset handles the reset command. Maps are reset directly, without
// transport access.
func (c *Console) cmdReset(args []string) error {
	if len(args) == 0 || (len(args) == 1 && strings.EqualFold(args[0], "all")) {
		c.smiMap.Reset()
		for _, phy := range c.sim.PHYs() {
			c.sim.Map(phy).Reset()
		}
		fmt.Fprintln(c.out, "All registers reset to defaults")
		return nil
	}

	scope, err := parseTier(args)
	if err != nil {
		return err
	}
	if scope == nil {
		c.smiMap.Reset()
		fmt.Fprintln(c.out, "SMI registers reset to defaults")
		return nil
	}
	c.sim.Map(*scope).Reset()
	fmt.Fprintf(c.out, "PHY %d registers reset to defaults\n", *scope)
	return nil
}

// cmdSave handles the save command.
func (c *Console) cmdSave() error {
	if c.store == nil {
		return errors.New("no snapshot file configured (use -snapshot)")
	}
	f := &snapshot.File{}
	f.Put(snapshot.Capture(c.smiMap, nil))
	for _, phy := range c.sim.PHYs() {
		f.Put(snapshot.Capture(c.sim.Map(phy).Map, &phy))
	}
	if err := c.store.Save(f); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	fmt.Fprintf(c.out, "Saved %d maps to %s\n", len(f.Maps), c.store.Path())
	return nil
}

// cmdLoad handles the load command. Every entry is checked before any map
// changes.
func (c *Console) cmdLoad() error {
	if c.store == nil {
		return errors.New("no snapshot file configured (use -snapshot)")
	}
	f, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if f == nil {
		return fmt.Errorf("no snapshot at %s", c.store.Path())
	}

	if err := c.restore(f, true); err != nil {
		return err
	}
	// Maps the file does not cover go back to their defaults.
	c.smiMap.Reset()
	for _, phy := range c.sim.PHYs() {
		c.sim.Map(phy).Reset()
	}
	if err := c.restore(f, false); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Loaded %d maps from %s (saved %s)\n", len(f.Maps), c.store.Path(),
		f.SavedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// restore loads every entry of f into the simulated maps, or into clones
// of them when dryRun is set.
func (c *Console) restore(f *snapshot.File, dryRun bool) error {
	for _, e := range f.Maps {
		var err error
		switch e.Tier {
		case smi.Bank().Name():
			m := c.smiMap
			if dryRun {
				m = m.Clone()
			}
			err = snapshot.Restore(e, m)
		case miim.Bank().Name():
			if e.Scope == nil || *e.Scope > maxPHY {
				return errors.New("PHY map without a valid phy address")
			}
			if dryRun {
				err = snapshot.Restore(e, miim.NewMap().Map)
			} else {
				err = snapshot.Restore(e, c.sim.Map(*e.Scope).Map)
			}
		default:
			return fmt.Errorf("unknown tier %q in snapshot", e.Tier)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// cmdTrace handles the trace command.
func (c *Console) cmdTrace(args []string) error {
	switch {
	case len(args) == 0:
		c.echo.on.Store(!c.echo.on.Load())
	case len(args) == 1:
		on, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		c.echo.on.Store(on)
	default:
		return errors.New("usage: trace [on|off]")
	}
	fmt.Fprintf(c.out, "Trace echo %s\n", onOff(c.echo.on.Load()))
	return nil
}

// parseTier parses an optional "smi" or "phyN" argument. It returns nil
// for SMI.
func parseTier(args []string) (*uint8, error) {
	if len(args) > 1 {
		return nil, errors.New("expected one tier")
	}
	if len(args) == 0 || strings.EqualFold(args[0], "smi") {
		return nil, nil
	}
	phy, err := parsePHY(args[0])
	if err != nil {
		return nil, err
	}
	return &phy, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func parseDirection(s string) (tx bool, err error) {
	switch strings.ToLower(s) {
	case "tx":
		return true, nil
	case "rx":
		return false, nil
	}
	return false, fmt.Errorf("expected tx or rx, got %q", s)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func upDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
