package commands

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("failed to parse line 1: %v", err)
	}
	if first["register"] != "Gc1" {
		t.Errorf("expected register Gc1, got %v", first["register"])
	}
	if first["tier"] != "SMI" || first["op"] != "READ" {
		t.Errorf("unexpected tier/op: %v/%v", first["tier"], first["op"])
	}
	if first["value"] != float64(0x34) {
		t.Errorf("expected value 52, got %v", first["value"])
	}
	if _, ok := first["phy"]; ok {
		t.Error("direct access must not carry a phy")
	}

	var last map[string]any
	if err := json.Unmarshal([]byte(lines[3]), &last); err != nil {
		t.Fatalf("failed to parse line 4: %v", err)
	}
	if last["phy"] != float64(2) {
		t.Errorf("expected phy 2, got %v", last["phy"])
	}
	if last["error"] != "bus fault" {
		t.Errorf("expected error text, got %v", last["error"])
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	outPath := filepath.Join(t.TempDir(), "out.csv")
	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d", len(records))
	}
	if records[0][0] != "timestamp" || records[0][9] != "error" {
		t.Errorf("unexpected header: %v", records[0])
	}

	row := records[3]
	if row[2] != "MIIM" || row[4] != "1" || row[5] != "0x00" || row[6] != "Bcr" || row[7] != "0x1020" {
		t.Errorf("unexpected MIIM row: %v", row)
	}
	if records[1][4] != "" {
		t.Errorf("direct access must leave phy empty, got %q", records[1][4])
	}
	if records[1][8] != "1500" {
		t.Errorf("expected duration 1500ns, got %q", records[1][8])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestExportMissingFile(t *testing.T) {
	if err := RunExport("/nonexistent/trace.klog", "jsonl", ""); err == nil {
		t.Error("expected error for missing file")
	}
}
