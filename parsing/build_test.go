package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/circuitsim/engine"
)

func TestBuildExpandsFormulaIntoGates(t *testing.T) {
	c := engine.New()
	c.AddInput("A", true)
	c.AddInput("B", false)

	ids, err := Build(c, "Y = A.B + !A.!B")
	require.NoError(t, err)
	require.Contains(t, ids, "Y")

	require.NoError(t, c.PowerOn())

	// A=1, B=0: Y = (A.B) + (!A.!B) = (1.0) + (0.1) = 0.
	v, ok := c.State(ids["Y"])
	require.True(t, ok)
	assert.False(t, v)
}

func TestBuildChainedAssignmentsReferenceEarlierNames(t *testing.T) {
	c := engine.New()
	c.AddInput("A", true)

	ids, err := Build(c, "T = !A; Y = T")
	require.NoError(t, err)
	require.NoError(t, c.PowerOn())

	v, _ := c.State(ids["Y"])
	assert.False(t, v, "A=1 so T=!A=0, Y=T=0")
}

func TestBuildUndeclaredIdentifierFails(t *testing.T) {
	c := engine.New()
	_, err := Build(c, "Y = A.B")
	assert.Error(t, err)
}

// TestBuildConstantLiteralIsPinnedNotAFreeVariable covers the boolean
// literal a formula can embed (spec.md §6): "A.1" must reduce to A
// itself, and the `1` must never show up as an extra driving signal for
// a caller to brute-force-toggle alongside A.
func TestBuildConstantLiteralIsPinnedNotAFreeVariable(t *testing.T) {
	c := engine.New()
	c.AddInput("A", true)

	ids, err := Build(c, "Y = A.1")
	require.NoError(t, err)
	require.NoError(t, c.PowerOn())

	v, ok := c.State(ids["Y"])
	require.True(t, ok)
	assert.True(t, v, "A=1, Y = A.1 = 1")

	assert.Equal(t, []string{"A"}, c.DrivingLabels(), "the literal must not be enumerated as a driving signal")
}
