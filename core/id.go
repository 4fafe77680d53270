// Package core holds types and error values shared by every circuitsim
// package: the stable gate identifier, the closed error taxonomy, and
// logger construction.
package core

// ID identifies a gate instance within a circuit. IDs are allocated
// strictly increasing and are never reused, even after removal (spec
// invariant: identifiers increase strictly with each allocation).
type ID int64

// NullID is the sentinel stored in a pin's source slot when that pin is
// unconnected.
const NullID ID = 0
