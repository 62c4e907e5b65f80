// Package snapshot persists register maps to disk.
//
// A snapshot file holds any number of maps, each tagged with the tier it
// belongs to and, for PHY registers, the PHY address. Words are stored in
// ascending address order, so a file only restores into a map of the same
// register table.
package snapshot
