package engine

import (
	"strings"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/registry"
)

// ExprActor is the graph-act actor implementing the Expression
// Propagator (spec.md §4.5): it recomputes each combinational gate's
// state-expression string from its inputs' expressions and its
// operator glyph, and only propagates the result onward when it
// changed — the same change-detection termination rule the State
// Propagator uses, applied to strings instead of booleans.
func ExprActor() Actor {
	return func(g *Instance, store *Store, q *Queue) {
		newExpr := FormatExpression(g)
		if newExpr == g.StateExpr {
			return
		}
		g.StateExpr = newExpr

		for _, e := range g.Forward {
			recv, ok := store.Get(e.Receiver)
			if !ok {
				continue
			}
			recv.setPinExpr(e.Pin, newExpr)
			q.PushCoalesced(e.Receiver)
		}
	}
}

// FormatExpression renders g's state expression from its data pins'
// cached expressions and its glyph, per spec.md §4.5:
//
//   - Input and Sequential gates have their expression pinned rather
//     than recomputed (label, and label+"(t)" respectively) — this
//     function still "recomputes" them, trivially, to the same pinned
//     value, so the change-detection rule above sees no difference and
//     never re-propagates a pinned expression.
//   - Unary kinds format as glyph+operand.
//   - Binary kinds format as left+glyph+right.
//   - Higher arity renders as "(op0 glyph op1 glyph …)".
func FormatExpression(g *Instance) string {
	if g.Category == registry.Input {
		return g.Label
	}
	if g.Category == registry.Sequential {
		return g.Label + "(t)"
	}

	operands := g.DataPinExprs()
	switch len(operands) {
	case 0:
		return ""
	case 1:
		return g.Glyph + operands[0]
	case 2:
		return operands[0] + g.Glyph + operands[1]
	default:
		return "(" + strings.Join(operands, g.Glyph) + ")"
	}
}

// PropagateExpr runs an expression-propagation graph-act seeded at ids.
func PropagateExpr(store *Store, limit int, ids ...core.ID) error {
	return GraphAct("expr", ids, store, ExprActor(), limit)
}
