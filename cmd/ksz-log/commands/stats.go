package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents  int
	EventsByTier map[log.Tier]int
	EventsByOp   map[log.Op]int
	Registers    map[string]*RegisterStats
	Sessions     map[string]*SessionStats
	Errors       int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// RegisterStats counts the accesses to one register.
type RegisterStats struct {
	Tier   log.Tier
	Reads  int
	Writes int
	Errors int
}

// SessionStats holds statistics for a single traced transport.
type SessionStats struct {
	Tier      log.Tier
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	PHYs      map[uint8]bool
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByTier: make(map[log.Tier]int),
		EventsByOp:   make(map[log.Op]int),
		Registers:    make(map[string]*RegisterStats),
		Sessions:     make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByTier[event.Tier]++
		stats.EventsByOp[event.Op]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		key := registerKey(event)
		reg, ok := stats.Registers[key]
		if !ok {
			reg = &RegisterStats{Tier: event.Tier}
			stats.Registers[key] = reg
		}
		if event.Op == log.OpWrite {
			reg.Writes++
		} else {
			reg.Reads++
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				Tier:      event.Tier,
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				PHYs:      make(map[uint8]bool),
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Scope != nil {
			sess.PHYs[*event.Scope] = true
		}

		if event.Failed() {
			stats.Errors++
			reg.Errors++
		}
	}
	return stats, nil
}

// registerKey names the register of an event, falling back to the tier and
// address for undocumented codes.
func registerKey(event log.Event) string {
	if event.Register != "" {
		return event.Register
	}
	return fmt.Sprintf("%s 0x%02x", event.Tier, event.Addr)
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== KSZ8863 Register Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Tier:")
	for _, tier := range []log.Tier{log.TierSMI, log.TierMIIM} {
		if count := stats.EventsByTier[tier]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", tier.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Op:")
	for _, op := range []log.Op{log.OpRead, log.OpWrite} {
		if count := stats.EventsByOp[op]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Registers) > 0 {
		names := make([]string, 0, len(stats.Registers))
		for name := range stats.Registers {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			a, b := stats.Registers[names[i]], stats.Registers[names[j]]
			if ta, tb := a.Reads+a.Writes, b.Reads+b.Writes; ta != tb {
				return ta > tb
			}
			return names[i] < names[j]
		})

		fmt.Fprintln(w, "Registers:")
		for _, name := range names {
			r := stats.Registers[name]
			fmt.Fprintf(w, "  %-30s %-4s reads %d, writes %d", name, r.Tier, r.Reads, r.Writes)
			if r.Errors > 0 {
				fmt.Fprintf(w, ", errors %d", r.Errors)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, s := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, s})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %s, %d events, duration %s\n",
				shortenSessionID(s.id), s.stats.Tier, s.stats.Events, duration)
			if len(s.stats.PHYs) > 0 {
				phys := make([]int, 0, len(s.stats.PHYs))
				for p := range s.stats.PHYs {
					phys = append(phys, int(p))
				}
				sort.Ints(phys)
				fmt.Fprintf(w, "           PHYs: %v\n", phys)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
