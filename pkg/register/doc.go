// Package register implements a table-driven model of a device register bank.
//
// A bank is a closed set of fixed-width registers, each described by an
// immutable Layout: its address within the bank, its word width, and an
// ordered list of bit fields with an access mode and a default value.
//
// # Typed Registers
//
// Every layout is compiled (see cmd/ksz-regen) into a small value type that
// owns exactly one raw word. Readable fields are exposed as methods on the
// value; writable fields are exposed on a companion writer type:
//
//	bcr := miim.Default[miim.Bcr]()
//	bcr.EnableAutoneg().IsSet()   // true
//	bcr.Writer().ForceFd().Set().Loopback().Clear()
//
// Field cursors only touch the in-memory word. Nothing is sent to a device
// until a Handle writes it.
//
// # Dynamic Representation
//
// A State pairs a layout (the tag) with a raw word. It can represent any
// register of a bank and is recovered into a typed register with Downcast,
// which compares tags and never uses reflection.
//
// A Map holds the State of every register of a bank and is always fully
// populated. It can stand in for a transport: Map.Read and Map.Write speak the
// same primitive a flat-addressed bus does.
//
// # Handles
//
// A Handle binds a Port and a register type and offers three operations:
//
//   - Read: one transport read, decoded into the register type.
//   - Write: start from the layout default, apply the caller's field
//     assignments, write the whole word.
//   - Modify: read the current word, apply the caller's field assignments,
//     write it back.
//
// Write declares the full desired register state; fields the caller does not
// touch take their default. Modify patches a value read from the device;
// fields the caller does not touch keep what was read. Modify is two
// transport calls and is not atomic.
//
// # Concurrency
//
// Nothing in this package locks. Callers sharing a Map or a transport between
// goroutines serialize access themselves.
package register
