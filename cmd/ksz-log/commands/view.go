// Package commands implements the ksz-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
)

// ViewOptions controls the view command.
type ViewOptions struct {
	Filter log.Filter

	// Decode adds the field breakdown of every documented register.
	Decode bool
}

// RunView prints the matching events of the trace file to w.
func RunView(path string, opts ViewOptions, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, opts.Filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event, opts.Decode)
	}
}

// formatEvent writes one line per event, plus a field line when decode is
// set and the register is documented.
func formatEvent(w io.Writer, event log.Event, decode bool) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	name := event.Register
	if name == "" {
		name = "?"
	}

	fmt.Fprintf(w, "%s [%s] %-4s %-5s %-9s %s", ts, shortenSessionID(event.SessionID),
		event.Tier, event.Op, event.Location(), name)
	if event.Failed() {
		fmt.Fprintf(w, " FAILED: %s", event.Error)
	} else {
		fmt.Fprintf(w, " = %s", formatValue(event))
	}
	if event.Duration > 0 {
		fmt.Fprintf(w, " (%s)", formatDuration(event.Duration))
	}
	fmt.Fprintln(w)

	if !decode || (event.Failed() && event.Op == log.OpRead) {
		return
	}
	if l := lookupLayout(event); l != nil {
		fmt.Fprintf(w, "  %s\n", l.Format(event.Value))
	}
}

// formatValue renders the word with the digit count of its tier.
func formatValue(event log.Event) string {
	if event.Tier == log.TierMIIM {
		return fmt.Sprintf("0x%04x", event.Value)
	}
	return fmt.Sprintf("0x%02x", event.Value)
}

// lookupLayout returns the layout behind the event's address, or nil.
func lookupLayout(event log.Event) *register.Layout {
	switch event.Tier {
	case log.TierSMI:
		if a, err := smi.ParseAddress(event.Addr); err == nil {
			return a.Layout()
		}
	case log.TierMIIM:
		if a, err := miim.ParseAddress(event.Addr); err == nil {
			return a.Layout()
		}
	}
	return nil
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return d.Round(time.Millisecond).String()
}
