// Package log provides structured register access tracing.
//
// Every primitive read or write a tier transport performs can be captured as
// an Event: which tier, which PHY for scoped access, which register, the word
// transferred, how long the transport took and the error it returned. This is
// separate from operational logging (slog); a trace is a complete
// machine-readable record of bus traffic.
//
// # Basic Usage
//
// Wrap a transport with the tier's Traced function and give it a Logger:
//
//	// During development: trace to the console via slog
//	t := smi.Traced(bus, log.NewSlogAdapter(slog.Default()))
//
//	// For later analysis: append to a trace file
//	fl, _ := log.NewFileLogger("switch.klog")
//	t := miim.Traced(mdio, fl)
//
//	// Both
//	t := smi.Traced(bus, log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl))
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys. The
// ksz-log tool views, filters, exports and summarizes them.
package log
