package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the view and filter
// commands. Empty fields match everything.
type FilterOptions struct {
	Output     string
	SessionID  string
	Tier       string
	Op         string
	Phy        string
	Register   string
	ErrorsOnly bool
	TimeStart  string
	TimeEnd    string
}

// BuildFilter parses the options into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		SessionID:  opts.SessionID,
		Register:   opts.Register,
		ErrorsOnly: opts.ErrorsOnly,
	}

	if opts.Tier != "" {
		t, err := log.ParseTier(opts.Tier)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Tier = &t
	}

	if opts.Op != "" {
		o, err := log.ParseOp(opts.Op)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Op = &o
	}

	if opts.Phy != "" {
		v, err := strconv.ParseUint(opts.Phy, 0, 8)
		if err != nil || v > 0x1F {
			return log.Filter{}, fmt.Errorf("invalid phy: %s (must be 0..31)", opts.Phy)
		}
		phy := uint8(v)
		filter.Scope = &phy
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// RunFilter copies the matching events of the trace file to opts.Output
// and returns how many were written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter, err := BuildFilter(opts)
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return logger.Written(), fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	if err := logger.Err(); err != nil {
		return logger.Written(), fmt.Errorf("failed to write event: %w", err)
	}
	return logger.Written(), nil
}
