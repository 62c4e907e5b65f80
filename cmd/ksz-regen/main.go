// Command ksz-regen generates the typed register code of a tier package from
// its YAML layout table.
//
// Usage:
//
//	ksz-regen -table tables/ksz8863/smi.yaml -output pkg/smi
//
// The table is validated first. Warnings are printed and generation goes
// ahead; errors abort it. The output directory receives registers_gen.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/ksz8863/ksz8863-go/pkg/tablespec"
)

func main() {
	tablePath := flag.String("table", "", "Path to the register table YAML")
	outputDir := flag.String("output", "", "Output directory for registers_gen.go")
	quiet := flag.Bool("q", false, "Do not print validation warnings")
	flag.Parse()

	if *tablePath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: ksz-regen -table <path> -output <dir> [-q]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*tablePath, *outputDir, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tablePath, outputDir string, quiet bool) error {
	table, err := tablespec.Load(tablePath)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	report := tablespec.Validate(table)
	if !quiet {
		for _, w := range report.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}
	if err := report.Err(); err != nil {
		return fmt.Errorf("invalid table %s:\n%w", tablePath, err)
	}

	code, err := Generate(table, filepath.ToSlash(tablePath))
	if err != nil {
		return fmt.Errorf("generating %s: %w", table.Tier, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	outPath := filepath.Join(outputDir, "registers_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing registers_gen.go: %w", err)
	}
	fmt.Printf("  generated %s (%d registers)\n", outPath, len(table.Registers))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the raw output for debugging the templates.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
