// Package interactive provides the interactive command-line interface of
// ksz-console.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
	"github.com/ksz8863/ksz8863-go/pkg/snapshot"
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// Config configures a Console.
type Config struct {
	// Out receives command output. Defaults to os.Stdout; Run replaces it
	// with the readline writer.
	Out io.Writer

	// Logger receives operational logs of the register engine. Nil
	// disables them.
	Logger *slog.Logger

	// Trace receives one event per transport access, typically a
	// log.FileLogger. Nil disables it.
	Trace log.Logger

	// Store persists the simulated maps for save and load. Nil disables
	// both commands.
	Store *snapshot.Store
}

// Console drives a simulated KSZ8863: one SMI register map and one MIIM
// map per PHY, both reached through traced transports.
type Console struct {
	out   io.Writer
	store *snapshot.Store

	smiMap *smi.Map
	sim    *miim.Sim
	smi    *smi.Smi
	miim   *miim.Miim

	echo *echoLogger
}

// New returns a Console over fresh default maps.
func New(cfg Config) *Console {
	c := &Console{
		out:    cfg.Out,
		store:  cfg.Store,
		smiMap: smi.NewMap(),
		sim:    miim.NewSim(),
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	handler := slog.NewTextHandler(consoleWriter{c}, &slog.HandlerOptions{Level: slog.LevelDebug})
	c.echo = &echoLogger{next: log.NewSlogAdapter(slog.New(handler))}
	sink := log.NewMultiLogger(cfg.Trace, c.echo)

	c.smi = smi.New(smi.Traced(c.smiMap, sink))
	c.smi.Logger = cfg.Logger
	c.miim = miim.New(miim.Traced(c.sim, sink))
	c.miim.Logger = cfg.Logger

	for _, phy := range miim.DefaultPHYAddrs {
		c.sim.Map(phy)
	}
	return c
}

// Run reads commands until quit, end of input or cancellation of ctx.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ksz> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    c.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	c.out = rl.Stdout()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}

		if err := c.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintln(c.out, "Exiting...")
				return nil
			}
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

// RunScript runs the ;-separated command lines of script in order. It stops
// at the first failing line, or without error at quit.
func (c *Console) RunScript(script string) error {
	for _, line := range strings.Split(script, ";") {
		if err := c.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return fmt.Errorf("%s: %w", strings.TrimSpace(line), err)
		}
	}
	return nil
}

// Exec runs one command line.
func (c *Console) Exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()
		return nil
	case "read", "r":
		return c.cmdRead(args)
	case "write", "w":
		return c.cmdWrite(args)
	case "modify", "m":
		return c.cmdModify(args)
	case "dump", "d":
		return c.cmdDump(args)
	case "diff":
		return c.cmdDiff(args)
	case "fields", "f":
		return c.cmdFields(args)
	case "info", "i":
		return c.cmdInfo()
	case "start":
		return c.cmdSwitch(true)
	case "stop":
		return c.cmdSwitch(false)
	case "port":
		return c.cmdPort(args)
	case "forcelink":
		return c.cmdForceLink(args)
	case "reset":
		return c.cmdReset(args)
	case "save":
		return c.cmdSave()
	case "load":
		return c.cmdLoad()
	case "trace":
		return c.cmdTrace(args)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
KSZ8863 Console Commands:
  Registers:
    read <reg>                 - Read a register and decode its fields
    write <reg> <value>        - Write a raw word ("default" writes the reset value)
    modify <reg> <f>=<v> ...   - Read, change the named fields, write back
    fields <reg>               - Show the field layout of a register
    dump [smi|phyN]            - Read every register of a tier
    diff [smi|phyN]            - List registers that differ from their defaults
    info                       - Show chip and PHY identification

  Typed Controls:
    start | stop               - Start or stop the switch engine
    port <1|2|3> <tx|rx> <on|off>
                               - Enable or disable a port direction
    forcelink <phyN> <on|off>  - Force the link of a PHY

  Simulation:
    reset [smi|phyN|all]       - Restore default register values
    save                       - Save all maps to the snapshot file
    load                       - Load all maps from the snapshot file
    trace [on|off]             - Echo every transport access

  General:
    help                       - Show this help
    quit                       - Exit console

  Register Format:
    SMI:  name or code         - e.g. Gc1, port1ctrl2, 0x03
    PHY:  phyN/name or code    - e.g. phy1/Bcr, phy2/0x1f`)
}

// consoleWriter forwards to the current output of the console.
type consoleWriter struct {
	c *Console
}

func (w consoleWriter) Write(p []byte) (int, error) { return w.c.out.Write(p) }

// echoLogger forwards events while enabled.
type echoLogger struct {
	on   atomic.Bool
	next log.Logger
}

func (e *echoLogger) Log(event log.Event) {
	if e.on.Load() {
		e.next.Log(event)
	}
}

func (c *Console) completer() *readline.PrefixCompleter {
	regs := readline.PcItemDynamic(func(string) []string { return registerNames() })
	tiers := readline.PcItemDynamic(func(string) []string { return append([]string{"smi"}, c.phyNames()...) })
	return readline.NewPrefixCompleter(
		readline.PcItem("read", regs),
		readline.PcItem("write", regs),
		readline.PcItem("modify", regs),
		readline.PcItem("fields", regs),
		readline.PcItem("dump", tiers),
		readline.PcItem("diff", tiers),
		readline.PcItem("reset", readline.PcItemDynamic(func(string) []string {
			return append([]string{"smi", "all"}, c.phyNames()...)
		})),
		readline.PcItem("info"),
		readline.PcItem("start"),
		readline.PcItem("stop"),
		readline.PcItem("port",
			readline.PcItem("1", readline.PcItem("tx"), readline.PcItem("rx")),
			readline.PcItem("2", readline.PcItem("tx"), readline.PcItem("rx")),
			readline.PcItem("3", readline.PcItem("tx"), readline.PcItem("rx")),
		),
		readline.PcItem("forcelink", readline.PcItemDynamic(func(string) []string { return c.phyNames() })),
		readline.PcItem("save"),
		readline.PcItem("load"),
		readline.PcItem("trace", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// registerNames lists completion candidates: every SMI register and every
// PHY register of the default PHYs.
func registerNames() []string {
	var out []string
	for _, a := range smi.Addresses() {
		out = append(out, a.Layout().Name)
	}
	for _, phy := range miim.DefaultPHYAddrs {
		for _, a := range miim.Addresses() {
			out = append(out, fmt.Sprintf("phy%d/%s", phy, a.Layout().Name))
		}
	}
	return out
}

// phyNames lists the simulated PHYs as "phyN".
func (c *Console) phyNames() []string {
	var out []string
	for _, phy := range c.sim.PHYs() {
		out = append(out, fmt.Sprintf("phy%d", phy))
	}
	return out
}
