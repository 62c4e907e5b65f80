package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/imports"

	"github.com/ksz8863/ksz8863-go/pkg/tablespec"
)

const smiTable = `
tier: smi
width: 8
registers:
  - addr: 0x03
    name: Gc1
    description: Global Control 1
    fields:
      - {name: pass_all_frames, bits: "7", access: RW, default: 0}
      - {name: aging_enable, bits: "2", access: RW, default: 1}
      - {name: fast_aging, bits: "1", access: R, default: 0}
      - {name: tail_tag, bits: "6", access: RW}
  - addr: 0x01
    name: ChipId1
    fields:
      - {name: chip_id, bits: "4..7", access: R, default: 3}
      - {name: start_switch, bits: "0", access: RW, default: 0}
`

const miimTable = `
tier: miim
width: 16
registers:
  - addr: 0x1F
    name: PhySpecial
    description: PHY special control and status
    fields:
      - {name: polarity_reversed, bits: "5", access: R}
      - {name: force_link, bits: "3", access: RW, default: 0}
      - {name: mode, bits: "8..11", access: W, default: 0xA}
`

func parseTable(t *testing.T, data string) *tablespec.RawTable {
	t.Helper()
	table, err := tablespec.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func generate(t *testing.T, data string) string {
	t.Helper()
	output, err := Generate(parseTable(t, data), "tables/test.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return output
}

func TestGenerateHeader(t *testing.T) {
	output := generate(t, smiTable)

	mustContain(t, output, "// Code generated by ksz-regen from tables/test.yaml. DO NOT EDIT.")
	mustContain(t, output, "package smi")
	mustContain(t, output, "AddrGc1 Address = 0x03")
	mustContain(t, output, "AddrChipId1 Address = 0x01")
	mustContain(t, output, "layoutGc1,\nlayoutChipId1,")
}

func TestGenerateLayout(t *testing.T) {
	output := generate(t, smiTable)

	mustContain(t, output, "// Gc1 is the SMI register at address 0x03 (Global Control 1).")
	mustContain(t, output, "// ChipId1 is the SMI register at address 0x01.")
	mustContain(t, output, "type Gc1 struct{ raw uint8 }")
	mustContain(t, output, "type Gc1W Gc1")
	mustContain(t, output, `Name: "Gc1",`)
	mustContain(t, output, "Width: register.Width8,")
	mustContain(t, output, `Doc: "Global Control 1",`)
	mustContain(t, output, `{Name: "pass_all_frames", Lsb: 7, Msb: 7, Access: register.AccessReadWrite, HasDefault: true},`)
	mustContain(t, output, `{Name: "aging_enable", Lsb: 2, Msb: 2, Access: register.AccessReadWrite, Default: 1, HasDefault: true},`)
	mustContain(t, output, `{Name: "chip_id", Lsb: 4, Msb: 7, Access: register.AccessRead, Default: 3, HasDefault: true},`)
}

func TestGenerateAccessors(t *testing.T) {
	output := generate(t, smiTable)

	mustContain(t, output, "func (r Gc1) PassAllFrames() register.BitR {")
	mustContain(t, output, "return register.ReadBit(r.raw, &layoutGc1.Fields[0])")
	mustContain(t, output, "func (r ChipId1) ChipId() register.BitsR[uint8] {")
	mustContain(t, output, "func (w *Gc1W) AgingEnable() register.ResettableBitW[uint8, *Gc1W] {")
	mustContain(t, output, "return register.WriteResettableBit(&w.raw, &layoutGc1.Fields[1], w)")

	// Fields without a default get a cursor without Reset.
	mustContain(t, output, "func (w *Gc1W) TailTag() register.BitW[uint8, *Gc1W] {")
	mustContain(t, output, "return register.WriteBit(&w.raw, &layoutGc1.Fields[3], w)")
	mustContain(t, output, "func (w *Gc1W) Reset() *Gc1W {")
	mustContain(t, output, "func (w *Gc1W) Bits(v uint8) *Gc1W {")

	// Read-only fields get no write accessor.
	mustNotContain(t, output, "func (w *Gc1W) FastAging()")
	mustNotContain(t, output, "func (w *ChipId1W) ChipId()")
	mustContain(t, output, "func (r Gc1) FastAging() register.BitR {")
}

func TestGenerateHandles(t *testing.T) {
	output := generate(t, smiTable)
	mustContain(t, output, "func (s *Smi) Gc1() Reg[Gc1, *Gc1W, *Gc1] {")
	mustContain(t, output, "return Handle[Gc1, *Gc1W](s)")

	output = generate(t, miimTable)
	mustContain(t, output, "package miim")
	mustContain(t, output, "func (p *Phy) PhySpecial() Reg[PhySpecial, *PhySpecialW, *PhySpecial] {")
	mustContain(t, output, "return Handle[PhySpecial, *PhySpecialW](p)")
	mustNotContain(t, output, "*Smi")
}

func TestGenerateWideFields(t *testing.T) {
	output := generate(t, miimTable)

	mustContain(t, output, "type PhySpecial struct{ raw uint16 }")
	mustContain(t, output, "Width: register.Width16,")
	mustContain(t, output, `{Name: "polarity_reversed", Lsb: 5, Msb: 5, Access: register.AccessRead},`)
	mustContain(t, output, `{Name: "mode", Lsb: 8, Msb: 11, Access: register.AccessWrite, Default: 10, HasDefault: true},`)
	mustContain(t, output, "func (w *PhySpecialW) Mode() register.ResettableBitsW[uint16, *PhySpecialW] {")
	mustContain(t, output, "return register.WriteResettableBits(&w.raw, &layoutPhySpecial.Fields[2], w)")

	// Write-only fields get no read accessor.
	mustNotContain(t, output, "func (r PhySpecial) Mode()")
}

func TestGenerateParses(t *testing.T) {
	for _, data := range []string{smiTable, miimTable} {
		output := generate(t, data)
		if _, err := parser.ParseFile(token.NewFileSet(), "registers_gen.go", output, 0); err != nil {
			t.Errorf("generated code does not parse: %v", err)
		}
	}
}

func TestGenerateChipTables(t *testing.T) {
	for _, name := range []string{"smi.yaml", "miim.yaml"} {
		path := filepath.Join("..", "..", "tables", "ksz8863", name)
		table, err := tablespec.Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		output, err := Generate(table, "tables/ksz8863/"+name)
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", name, err)
		}
		if _, err := parser.ParseFile(token.NewFileSet(), name, output, 0); err != nil {
			t.Errorf("generated code for %s does not parse: %v", name, err)
		}
	}
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, tier := range []string{"smi", "miim"} {
		t.Run(tier, func(t *testing.T) {
			table, err := tablespec.Load(filepath.Join("..", "..", "tables", "ksz8863", tier+".yaml"))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			code, err := Generate(table, "tables/ksz8863/"+tier+".yaml")
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			path := filepath.Join("..", "..", "pkg", tier, "registers_gen.go")
			want, err := imports.Process(path, []byte(code), nil)
			if err != nil {
				t.Fatalf("goimports failed: %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(want) {
				t.Errorf("%s is stale, regenerate it with ksz-regen -table tables/ksz8863/%s.yaml -output pkg/%s", path, tier, tier)
			}
		})
	}
}

func TestRunWritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "smi.yaml")
	if err := os.WriteFile(tablePath, []byte(smiTable), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(tablePath, dir, true); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "registers_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	output := string(data)
	mustContain(t, output, "\tAddrGc1     Address = 0x03\n")
	mustContain(t, output, "\tName:  \"Gc1\",\n")
}

func TestRunRejectsInvalidTable(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "bad.yaml")
	bad := "tier: smi\nwidth: 8\nregisters: [{addr: 1, name: A, fields: [{name: f, bits: '4..8', access: R}]}]"
	if err := os.WriteFile(tablePath, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	err := run(tablePath, dir, true)
	if err == nil {
		t.Fatal("run succeeded on an invalid table")
	}
	mustContain(t, err.Error(), "A.f: bit 8 beyond 8-bit word")
	if _, err := os.Stat(filepath.Join(dir, "registers_gen.go")); !os.IsNotExist(err) {
		t.Error("registers_gen.go written for an invalid table")
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
