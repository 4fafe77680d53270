package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/registry"
)

// Table is a generic column-indexed grid: columns are named once via
// ResetColumns, then rows are appended and filled in by column name
// rather than positional index. Grounded on the original engine's
// table.rs Table<T>, generalized with a Go type parameter in place of
// Rust's Default+Clone bound.
type Table[T any] struct {
	cols   []string
	colIdx map[string]int
	rows   [][]T
}

// NewTable returns an empty table with no columns.
func NewTable[T any]() *Table[T] {
	return &Table[T]{colIdx: make(map[string]int)}
}

// ResetColumns names the table's columns and discards any existing
// rows.
func (t *Table[T]) ResetColumns(cols []string) {
	t.cols = cols
	t.rows = nil
	t.colIdx = make(map[string]int, len(cols))
	for i, c := range cols {
		t.colIdx[c] = i
	}
}

// Columns returns the column names in order.
func (t *Table[T]) Columns() []string { return t.cols }

// Rows returns the rows in insertion order, each the width of Columns.
func (t *Table[T]) Rows() [][]T { return t.rows }

// AddRow appends a zero-valued row and returns its index.
func (t *Table[T]) AddRow() int {
	t.rows = append(t.rows, make([]T, len(t.cols)))
	return len(t.rows) - 1
}

// SetValAt writes val into row i under column col. A silent no-op if
// col was never named by ResetColumns.
func (t *Table[T]) SetValAt(i int, col string, val T) {
	idx, ok := t.colIdx[col]
	if !ok {
		return
	}
	t.rows[i][idx] = val
}

// Render draws the table with fixed-width boxed columns, the same
// layout as the original engine's fmt::Display impl for Table<T>,
// with format supplying the per-cell string since Go generics have no
// direct analogue of a blanket fmt::Display bound.
func (t *Table[T]) Render(format func(T) string) string {
	if len(t.cols) == 0 {
		return ""
	}
	width := 6*len(t.cols) - 1

	var b strings.Builder
	fmt.Fprintf(&b, " %s\n|", strings.Repeat("-", width))
	for _, c := range t.cols {
		fmt.Fprintf(&b, "  %s  |", c)
	}
	b.WriteString("\n|")
	b.WriteString(strings.Repeat("-----|", len(t.cols)))
	b.WriteString("\n")
	for _, row := range t.rows {
		b.WriteString("|")
		for _, v := range row {
			fmt.Fprintf(&b, "  %s  |", format(v))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, " %s\n", strings.Repeat("-", width))
	return b.String()
}

// RenderBool formats a *Table[bool] the way spec.md §6 specifies: bit
// values are the ASCII characters '0' and '1'.
func RenderBool(t *Table[bool]) string {
	return t.Render(func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	})
}

// bitwiseCounter unpacks n into a bits-wide, most-significant-bit-first
// Boolean vector (spec.md §4.7), equivalent to the original engine's
// bitwise_counter iterator (original_source/engine/src/table.rs) applied
// to a single index rather than yielding the whole sequence.
func bitwiseCounter(n, bits int) []bool {
	out := make([]bool, bits)
	for j := 0; j < bits; j++ {
		out[j] = (n>>(bits-1-j))&1 == 1
	}
	return out
}

type drivingSignal struct {
	id   core.ID
	expr string
}

type outputSignal struct {
	id    core.ID
	label string
}

// drivingSignals returns every non-clock, non-pinned Input and every
// non-clock Sequential gate, sorted by state-expression (spec.md
// §4.7's column ordering). A pinned Input (engine.Circuit.AddConstant)
// is excluded: its value is fixed by construction, not a free variable
// to enumerate.
func (c *Circuit) drivingSignals() []drivingSignal {
	var out []drivingSignal
	c.store.Each(func(g *Instance) {
		if _, ok := c.pinned[g.ID]; ok {
			return
		}
		switch g.Category {
		case registry.Input:
			if g.ID != c.clockSource {
				out = append(out, drivingSignal{id: g.ID, expr: g.StateExpr})
			}
		case registry.Sequential:
			if g.ID != c.clockSource {
				out = append(out, drivingSignal{id: g.ID, expr: g.StateExpr})
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].expr < out[j].expr })
	return out
}

// trackedOutputs returns every tracked output, sorted by label.
func (c *Circuit) trackedOutputs() []outputSignal {
	out := make([]outputSignal, 0, len(c.outputs))
	for id := range c.outputs {
		inst, ok := c.store.Get(id)
		if !ok {
			continue
		}
		out = append(out, outputSignal{id: id, label: inst.Label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })
	return out
}

// DrivingLabels and OutputLabels return the same column name lists
// TruthTable uses, so a caller (internal/server, cmd/circuitsim's table
// command) can
// split a rendered table's columns into inputs vs. tracked outputs
// without re-deriving the ordering itself.
func (c *Circuit) DrivingLabels() []string {
	drivers := c.drivingSignals()
	out := make([]string, len(drivers))
	for i, d := range drivers {
		out[i] = d.expr
	}
	return out
}

func (c *Circuit) OutputLabels() []string {
	outputs := c.trackedOutputs()
	out := make([]string, len(outputs))
	for i, o := range outputs {
		out[i] = o.label
	}
	return out
}

// TruthTable enumerates every assignment of the driving signals (every
// non-clock, non-pinned Input and non-clock Sequential gate), drives
// each one, pulses the
// clock, and harvests the tracked outputs — spec.md §4.7. Columns are
// the driving signals' state-expressions followed by the tracked
// outputs' labels, sorted independently; rows are produced in
// ascending numeric order of the assignment, unpacked most-significant
// bit first.
func (c *Circuit) TruthTable() (*Table[bool], error) {
	if err := c.Compile(); err != nil {
		return nil, err
	}

	drivers := c.drivingSignals()
	outputs := c.trackedOutputs()

	cols := make([]string, 0, len(drivers)+len(outputs))
	for _, d := range drivers {
		cols = append(cols, d.expr)
	}
	for _, o := range outputs {
		cols = append(cols, o.label)
	}

	table := NewTable[bool]()
	table.ResetColumns(cols)

	k := len(drivers)
	rowCount := 1 << uint(k)

	for n := 0; n < rowCount; n++ {
		bits := bitwiseCounter(n, k)

		var seeds []core.ID
		for i, d := range drivers {
			inst, ok := c.store.Get(d.id)
			if !ok {
				continue
			}
			inst.State = bits[i]
			for _, e := range inst.Forward {
				recv, ok := c.store.Get(e.Receiver)
				if !ok {
					continue
				}
				recv.setPinValue(e.Pin, bits[i])
				if e.Pin == 0 && recv.Detector != nil {
					recv.Detector.Push(bits[i])
				}
				seeds = append(seeds, e.Receiver)
			}
		}
		if err := Refresh(c.store, c.limit, seeds...); err != nil {
			return nil, err
		}
		if err := c.PulseClock(); err != nil {
			return nil, err
		}

		row := table.AddRow()
		for i, d := range drivers {
			table.SetValAt(row, d.expr, bits[i])
		}
		for _, o := range outputs {
			v, _ := c.State(o.id)
			table.SetValAt(row, o.label, v)
		}
	}

	return table, nil
}
