// Package registry implements the Gate Registry component (spec.md
// §4.1): an immutable-per-entry mapping from gate kind name to gate
// definition, seeded with the built-in kinds and open to user
// registration.
package registry

import (
	"github.com/xDarkicex/circuitsim/core"
)

// Category classifies a gate kind for the purposes of edge-triggering
// and expression formatting (spec.md §3).
type Category int

const (
	// Input gates' value is driven externally; their evaluator returns
	// the current state unchanged.
	Input Category = iota
	// Combinational gates recompute on every input change.
	Combinational
	// Sequential gates only change on a detected rising edge of pin 0.
	Sequential
)

func (c Category) String() string {
	switch c {
	case Input:
		return "Input"
	case Combinational:
		return "Combinational"
	case Sequential:
		return "Sequential"
	default:
		return "Unknown"
	}
}

// Evaluator computes a gate's new state from its current *data* pin
// values (pins 1..DefaultInputs — the clock pin 0 is never passed in,
// since edge detection on it is the Edge Detector's job, not the
// evaluator's) and its current state. Combinational gates ignore the
// state argument; Input returns it unchanged; sequential gates use it
// to retain state between edges (e.g. JK's Q feedback).
type Evaluator func(pins []bool, state bool) bool

// Definition is an immutable record describing one gate kind: its
// default non-clock input-pin count, the glyph used when rendering
// expressions, its category, and its evaluator (spec.md §3).
type Definition struct {
	Kind          string
	DefaultInputs int
	Glyph         string
	Category      Category
	Eval          Evaluator
}

// Registry maps kind name to Definition. Registering a name that
// already exists overwrites the previous definition (spec.md §4.1).
type Registry struct {
	defs map[string]Definition
}

// New returns a Registry seeded with the built-in kinds: Input, NAND,
// AND, OR, XOR, NOT, BFR and JK (spec.md §4.1, §6).
func New() *Registry {
	r := &Registry{defs: make(map[string]Definition)}
	for _, d := range builtins() {
		r.Register(d)
	}
	return r
}

// Register inserts or overwrites the definition for d.Kind.
func (r *Registry) Register(d Definition) {
	r.defs[d.Kind] = d
}

// Lookup returns the definition for kind, or ok=false if it was never
// registered.
func (r *Registry) Lookup(kind string) (Definition, bool) {
	d, ok := r.defs[kind]
	return d, ok
}

// MustLookup returns the definition for kind or a core.ErrUnknownKind
// wrapped with op.
func (r *Registry) MustLookup(op, kind string) (Definition, error) {
	d, ok := r.defs[kind]
	if !ok {
		return Definition{}, core.UnknownKind(op, kind)
	}
	return d, nil
}

// builtins returns the seed definitions for the built-in gate kinds,
// grounded directly on define_common_gates in
// _examples/original_source/engine/src/circuit.rs, which is the only
// source in the retrieval pack that defines NAND/AND/OR/NOT/JK with
// exactly the arities and glyphs spec.md §6 names.
func builtins() []Definition {
	return []Definition{
		{
			Kind:          "Input",
			DefaultInputs: 0,
			Glyph:         "",
			Category:      Input,
			Eval:          func(pins []bool, state bool) bool { return state },
		},
		{
			Kind:          "NAND",
			DefaultInputs: 2,
			Glyph:         "!.",
			Category:      Combinational,
			Eval: func(pins []bool, state bool) bool {
				return !(pins[0] && pins[1])
			},
		},
		{
			Kind:          "AND",
			DefaultInputs: 2,
			Glyph:         ".",
			Category:      Combinational,
			Eval: func(pins []bool, state bool) bool {
				return pins[0] && pins[1]
			},
		},
		{
			Kind:          "OR",
			DefaultInputs: 2,
			Glyph:         "+",
			Category:      Combinational,
			Eval: func(pins []bool, state bool) bool {
				return pins[0] || pins[1]
			},
		},
		{
			Kind:          "XOR",
			DefaultInputs: 2,
			Glyph:         "*",
			Category:      Combinational,
			Eval: func(pins []bool, state bool) bool {
				return pins[0] != pins[1]
			},
		},
		{
			Kind:          "NOT",
			DefaultInputs: 1,
			Glyph:         "!",
			Category:      Combinational,
			Eval: func(pins []bool, state bool) bool {
				return !pins[0]
			},
		},
		{
			Kind:          "BFR",
			DefaultInputs: 1,
			Glyph:         "",
			Category:      Combinational,
			Eval: func(pins []bool, state bool) bool {
				return pins[0]
			},
		},
		{
			Kind:          "JK",
			DefaultInputs: 2,
			Glyph:         "JK",
			Category:      Sequential,
			Eval: func(pins []bool, state bool) bool {
				j, k, q := pins[0], pins[1], state
				return (j && !q) || (!k && q)
			},
		},
	}
}
