// Package engine implements the Component Store, BFS Event Queue, State
// Propagator, Edge Detector, Expression Propagator, Circuit Facade and
// Truth-Table Generator described in spec.md §4.2-§4.7.
package engine

import (
	"fmt"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/registry"
)

// Edge is a forward edge: a directed reference from a driving gate's
// output to one (receiver, receiver pin) pair.
type Edge struct {
	Receiver core.ID
	Pin      int
}

// EdgeDetector is the per-sequential-gate latch tracking the two most
// recent values seen on pin 0, used to classify rising edges (spec.md
// §4.4).
type EdgeDetector struct {
	previous bool
	current  bool
}

// Push records a new sample. Equal-to-current samples are ignored, per
// spec.md §4.4 ("if v equals the current held value, ignore").
func (d *EdgeDetector) Push(v bool) {
	if v == d.current {
		return
	}
	d.previous = d.current
	d.current = v
}

// Triggered reports whether the last two distinct samples form a rising
// edge: previous = false and current = true.
func (d *EdgeDetector) Triggered() bool {
	return !d.previous && d.current
}

// Reset clears both tracked values to false.
func (d *EdgeDetector) Reset() {
	d.previous = false
	d.current = false
}

// Pin is one input slot on a gate instance: the identifier of the gate
// driving it (core.NullID if unconnected), its cached boolean value, and
// its cached expression string.
type Pin struct {
	Source core.ID
	Value  bool
	Expr   string
}

// Instance is a mutable node in the circuit graph (spec.md §3's "gate
// instance"). Edges between instances are always identifiers, never
// direct pointers, so the graph can be cyclic without Go's aliasing
// rules getting in the way: a traversal borrows one instance (the
// actor's "self") at a time, writes its neighbours' pin caches through
// the store by id, and releases "self" before a neighbour already
// visited this pass is re-entered.
type Instance struct {
	ID       core.ID
	Kind     string
	Label    string
	Category registry.Category
	Glyph    string
	Eval     registry.Evaluator

	State     bool
	StateExpr string

	// Pins has length DefaultInputs+1; Pins[0] is the clock pin (only
	// meaningful when Category == Sequential), Pins[1:] are data pins.
	Pins []Pin

	Forward  []Edge
	Detector *EdgeDetector // non-nil only for Sequential instances
}

func newInstance(id core.ID, d registry.Definition, label string) *Instance {
	inst := &Instance{
		ID:       id,
		Kind:     d.Kind,
		Label:    label,
		Category: d.Category,
		Glyph:    d.Glyph,
		Eval:     d.Eval,
		Pins:     make([]Pin, d.DefaultInputs+1),
	}
	for i := range inst.Pins {
		inst.Pins[i].Source = core.NullID
	}
	switch d.Category {
	case registry.Sequential:
		inst.Detector = &EdgeDetector{}
	case registry.Input:
		inst.StateExpr = label
	default:
		// Invariant 3 (spec.md §3) must hold even before a gate is ever
		// connected or propagated to: its cached output already equals
		// its evaluator applied to its (all-false) pin snapshot.
		inst.State = inst.Eval(inst.DataPinValues(), false)
	}
	return inst
}

// DataPinValues returns the current values of the data pins (Pins[1:])
// in order, the slice Evaluator expects.
func (g *Instance) DataPinValues() []bool {
	vals := make([]bool, len(g.Pins)-1)
	for i, p := range g.Pins[1:] {
		vals[i] = p.Value
	}
	return vals
}

// DataPinExprs returns the current expression strings of the data pins.
func (g *Instance) DataPinExprs() []string {
	exprs := make([]string, len(g.Pins)-1)
	for i, p := range g.Pins[1:] {
		exprs[i] = p.Expr
	}
	return exprs
}

// addForward inserts (recv, pin) into the forward set if not already
// present; duplicates collapse (spec.md §3 invariant 1). A linear scan
// over a small slice, rather than a map, keeps iteration order stable
// across repeated traversals of the same topology — required for the
// "build the truth table twice, get the same table" round-trip property
// (spec.md §8).
func (g *Instance) addForward(e Edge) {
	for _, existing := range g.Forward {
		if existing == e {
			return
		}
	}
	g.Forward = append(g.Forward, e)
}

// removeForward deletes (recv, pin) from the forward set. Reports
// whether it was present.
func (g *Instance) removeForward(e Edge) bool {
	for i, existing := range g.Forward {
		if existing == e {
			g.Forward = append(g.Forward[:i], g.Forward[i+1:]...)
			return true
		}
	}
	return false
}

func (g *Instance) setPinValue(pin int, v bool) {
	g.Pins[pin].Value = v
}

func (g *Instance) setPinExpr(pin int, expr string) {
	g.Pins[pin].Expr = expr
}

// String renders a one-line status summary in the style of the
// original Rust engine's ANSI-colored Display impl
// (original_source/engine/src/components.rs), substituting plain
// ON/OFF tokens since terminal color is a presentation concern of
// internal/tui, not the engine.
func (g *Instance) String() string {
	state := "OFF"
	if g.State {
		state = "ON"
	}
	n := len(g.Pins) - 1
	plural := "s"
	if n == 1 {
		plural = ""
	}
	label := g.Label
	if label == "" {
		label = fmt.Sprintf("#%d", g.ID)
	}
	return fmt.Sprintf("%s[%s] (%d input%s) symbol=%q state=%s expr=%q",
		g.Kind, label, n, plural, g.Glyph, state, g.StateExpr)
}
