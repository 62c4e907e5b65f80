// Package smi provides typed access to the KSZ8863 switch registers reached
// over SMI, the flat 8-bit register space of the switch core.
//
// Every register of the table in tables/ksz8863/smi.yaml is a Go type with
// read accessors for its readable fields and a writer type with write
// accessors for its writable fields. The types, their layouts and the
// address constants are generated by ksz-regen into registers_gen.go.
//
// # Basic Usage
//
//	s := smi.New(bus)
//
//	// Read a register
//	gc1, err := s.Gc1().Read()
//	if gc1.Aging().IsSet() { ... }
//
//	// Write from defaults: fields left alone get their default value
//	err = s.Gc1().Write(func(w *smi.Gc1W) { w.PassAllFrames().Set() })
//
//	// Read-modify-write: fields left alone keep the value read
//	err = s.Port1Ctrl2().Modify(func(w *smi.Port1Ctrl2W) {
//		w.Transmit().Clear().Receive().Clear()
//	})
//
// # In-Memory Maps
//
// A Map holds one word per register, initialized to the power-on defaults.
// It implements Transport, so the same handles work against a simulated
// switch:
//
//	m := smi.NewMap()
//	s := smi.New(m)
package smi
