// Command ksz-log is a tool for viewing and analyzing register trace files.
//
// Trace files are written by ksz-console with the -trace flag, or by any
// program wrapping a tier transport with smi.Traced or miim.Traced and a
// log.FileLogger.
//
// Usage:
//
//	ksz-log <command> [flags] <file.klog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all accesses
//	ksz-log view switch.klog
//
//	# View only MIIM writes to PHY 2
//	ksz-log view -tier miim -op write -phy 2 switch.klog
//
//	# View failed accesses with decoded fields
//	ksz-log view -errors -decode switch.klog
//
//	# Export to CSV
//	ksz-log export -format csv -o switch.csv switch.klog
//
//	# Keep one session
//	ksz-log filter -session 8e0f6a2c-... -o session.klog switch.klog
//
//	# Show statistics
//	ksz-log stats switch.klog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ksz8863/ksz8863-go/cmd/ksz-log/commands"
)

const usage = `ksz-log - KSZ8863 Register Trace Analyzer

Usage:
  ksz-log <command> [flags] <file.klog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "ksz-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ksz-log view - View trace file in human-readable format

Usage:
  ksz-log view [flags] <file.klog>

Flags:
`)
		fs.PrintDefaults()
	}

	tier := fs.String("tier", "", "Filter by tier (smi, miim)")
	op := fs.String("op", "", "Filter by operation (read, write)")
	phy := fs.String("phy", "", "Filter by PHY address (MIIM only)")
	register := fs.String("register", "", "Filter by register name")
	errorsOnly := fs.Bool("errors", false, "Show failed accesses only")
	decode := fs.Bool("decode", false, "Decode register fields")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter, err := commands.BuildFilter(commands.FilterOptions{
		Tier:       *tier,
		Op:         *op,
		Phy:        *phy,
		Register:   *register,
		ErrorsOnly: *errorsOnly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := commands.ViewOptions{Filter: filter, Decode: *decode}
	if err := commands.RunView(path, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ksz-log export - Export trace file to JSON or CSV format

Usage:
  ksz-log export [flags] <file.klog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ksz-log filter - Filter trace file and write to new file

Usage:
  ksz-log filter [flags] <file.klog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	session := fs.String("session", "", "Filter by session ID")
	tier := fs.String("tier", "", "Filter by tier (smi, miim)")
	op := fs.String("op", "", "Filter by operation (read, write)")
	phy := fs.String("phy", "", "Filter by PHY address (MIIM only)")
	register := fs.String("register", "", "Filter by register name")
	errorsOnly := fs.Bool("errors", false, "Keep failed accesses only")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:     *output,
		SessionID:  *session,
		Tier:       *tier,
		Op:         *op,
		Phy:        *phy,
		Register:   *register,
		ErrorsOnly: *errorsOnly,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
	}

	n, err := commands.RunFilter(fs.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ksz-log stats - Show statistics about the trace file

Usage:
  ksz-log stats <file.klog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
