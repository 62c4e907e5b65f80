package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

// exportRecord is the flat JSON shape of one event.
type exportRecord struct {
	Timestamp  string `json:"timestamp"`
	SessionID  string `json:"session_id"`
	Tier       string `json:"tier"`
	Op         string `json:"op"`
	Phy        *uint8 `json:"phy,omitempty"`
	Addr       uint8  `json:"addr"`
	Register   string `json:"register,omitempty"`
	Value      uint16 `json:"value"`
	DurationNs int64  `json:"duration_ns,omitempty"`
	Error      string `json:"error,omitempty"`
}

const timestampLayout = "2006-01-02T15:04:05.000000Z"

func newExportRecord(event log.Event) exportRecord {
	return exportRecord{
		Timestamp:  event.Timestamp.UTC().Format(timestampLayout),
		SessionID:  event.SessionID,
		Tier:       event.Tier.String(),
		Op:         event.Op.String(),
		Phy:        event.Scope,
		Addr:       event.Addr,
		Register:   event.Register,
		Value:      event.Value,
		DurationNs: event.Duration.Nanoseconds(),
		Error:      event.Error,
	}
}

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(newExportRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "tier", "op", "phy", "addr", "register", "value", "duration_ns", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		phy := ""
		if event.Scope != nil {
			phy = strconv.Itoa(int(*event.Scope))
		}
		row := []string{
			event.Timestamp.UTC().Format(timestampLayout),
			event.SessionID,
			event.Tier.String(),
			event.Op.String(),
			phy,
			fmt.Sprintf("0x%02x", event.Addr),
			event.Register,
			formatValue(event),
			strconv.FormatInt(event.Duration.Nanoseconds(), 10),
			event.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
