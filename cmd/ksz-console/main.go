// Command ksz-console is an interactive console over a simulated KSZ8863.
//
// It keeps one SMI register map and one MIIM map per PHY in memory and
// reaches them through the same traced transports a real bus driver would
// use, so every access can be recorded and inspected with ksz-log.
//
// Usage:
//
//	ksz-console [flags]
//
// Flags:
//
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-trace string      Append every register access to this trace file
//	-snapshot string   Snapshot file used by save and load
//	-restore           Load the snapshot file at startup
//	-exec string       Run semicolon-separated commands and exit
//
// Examples:
//
//	# Explore the register maps
//	ksz-console
//
//	# Record a session for ksz-log
//	ksz-console -trace switch.klog
//
//	# Resume a saved simulation
//	ksz-console -snapshot switch.json -restore
//
//	# Script a change
//	ksz-console -snapshot switch.json -restore -exec "port 1 tx off; save"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ksz8863/ksz8863-go/cmd/ksz-console/interactive"
	"github.com/ksz8863/ksz8863-go/pkg/log"
	"github.com/ksz8863/ksz8863-go/pkg/snapshot"
)

// Config holds the console configuration.
type Config struct {
	LogLevel string
	Trace    string
	Snapshot string
	Restore  bool
	Exec     string
}

var config Config

func init() {
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.Trace, "trace", "", "Append every register access to this trace file")
	flag.StringVar(&config.Snapshot, "snapshot", "", "Snapshot file used by save and load")
	flag.BoolVar(&config.Restore, "restore", false, "Load the snapshot file at startup")
	flag.StringVar(&config.Exec, "exec", "", "Run semicolon-separated commands and exit")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := setupLogging(config.LogLevel)
	if err != nil {
		return err
	}

	cfg := interactive.Config{Logger: logger}

	if config.Trace != "" {
		fl, err := log.NewFileLogger(config.Trace)
		if err != nil {
			return fmt.Errorf("failed to open trace file: %w", err)
		}
		defer func() {
			if err := fl.Err(); err != nil {
				logger.Warn("trace incomplete", "path", config.Trace, "error", err)
			}
			fl.Close()
			logger.Info("trace closed", "path", config.Trace, "events", fl.Written())
		}()
		cfg.Trace = fl
	}

	if config.Snapshot != "" {
		cfg.Store = snapshot.NewStore(config.Snapshot)
	} else if config.Restore {
		return fmt.Errorf("-restore requires -snapshot")
	}

	console := interactive.New(cfg)

	if config.Restore {
		if err := console.Exec("load"); err != nil {
			return err
		}
	}

	if config.Exec != "" {
		return console.RunScript(config.Exec)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return console.Run(ctx)
}

func setupLogging(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}
