package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTruthTableEightRows covers spec.md §8 scenario 4: the truth table
// of F = A.B + !A.!B.C over inputs {A, B, C} has 8 rows matching the
// expression's own semantics, and the row count satisfies invariant 5
// (rows = 2^k, k = #inputs since there is no clock in this circuit).
func TestTruthTableEightRows(t *testing.T) {
	c := New()

	a := c.AddInput("A", false)
	b := c.AddInput("B", false)
	cc := c.AddInput("C", false)

	notA, err := c.AddComponent("NOT", "")
	require.NoError(t, err)
	notB, err := c.AddComponent("NOT", "")
	require.NoError(t, err)
	term1, err := c.AddComponent("AND", "")
	require.NoError(t, err)
	tmp, err := c.AddComponent("AND", "")
	require.NoError(t, err)
	term2, err := c.AddComponent("AND", "")
	require.NoError(t, err)
	f, err := c.AddComponent("OR", "F")
	require.NoError(t, err)

	require.NoError(t, c.Connect(notA, 1, a))
	require.NoError(t, c.Connect(notB, 1, b))
	require.NoError(t, c.Connect(term1, 1, a))
	require.NoError(t, c.Connect(term1, 2, b))
	require.NoError(t, c.Connect(tmp, 1, notA))
	require.NoError(t, c.Connect(tmp, 2, notB))
	require.NoError(t, c.Connect(term2, 1, tmp))
	require.NoError(t, c.Connect(term2, 2, cc))
	require.NoError(t, c.Connect(f, 1, term1))
	require.NoError(t, c.Connect(f, 2, term2))

	require.True(t, c.TrackOutput(f))
	require.NoError(t, c.PowerOn())

	table, err := c.TruthTable()
	require.NoError(t, err)

	cols := table.Columns()
	require.Equal(t, []string{"A", "B", "C", "F"}, cols)

	rows := table.Rows()
	require.Len(t, rows, 8) // invariant 5: 2^3, no clock present

	want := []bool{false, true, false, false, false, false, true, true}
	for n, row := range rows {
		assert.Equal(t, want[n], row[3], "row %d (F column)", n)
	}
}

// TestTruthTableExcludesConfiguredClock covers spec.md §4.7's "except
// clock" clause and invariant 5's "− clock-present?" row-count term: a
// circuit whose clock is a plain Input wired via SetClock must not have
// that Input enumerated and brute-force-toggled as a driving signal —
// it advances only through TruthTable's own per-row PulseClock call.
// The JK flip-flop itself is a non-clock Sequential gate, so its state
// expression Q(t) is a driving signal alongside A.
func TestTruthTableExcludesConfiguredClock(t *testing.T) {
	c := New()

	a := c.AddInput("A", false)
	clk := c.AddInput("clk", false)
	c.SetClock(clk)

	notA, err := c.AddComponent("NOT", "")
	require.NoError(t, err)
	require.NoError(t, c.Connect(notA, 1, a))

	q, err := c.AddComponent("JK", "Q")
	require.NoError(t, err)
	require.NoError(t, c.Connect(q, 0, clk))
	require.NoError(t, c.Connect(q, 1, a))
	require.NoError(t, c.Connect(q, 2, notA))

	require.True(t, c.TrackOutput(q))
	require.NoError(t, c.PowerOn())

	table, err := c.TruthTable()
	require.NoError(t, err)

	cols := table.Columns()
	require.Equal(t, []string{"A", "Q(t)", "Q"}, cols, "clk must not appear as a driving-signal column")

	rows := table.Rows()
	require.Len(t, rows, 4) // invariant 5: 2^(2 inputs + 1 sequential - clock)

	// Each row pulses the clock once: J=A, K=!A sets Q to whatever A was,
	// whatever Q(t) held before the pulse.
	want := []bool{false, false, true, true}
	for n, row := range rows {
		assert.Equal(t, want[n], row[0], "row %d (A column)", n)
		assert.Equal(t, want[n], row[2], "row %d (Q column)", n)
	}
}
