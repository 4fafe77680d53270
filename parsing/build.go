package parsing

import (
	"fmt"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/engine"
)

// Build parses source and expands each assignment into wired gate
// instances against c, returning the resulting id for every assigned
// name. An identifier that isn't itself the target of an earlier
// assignment in this same call is resolved against c's existing
// labelled inputs (engine.Circuit.InputByLabel); an identifier that
// matches neither is a parse failure, since the expression propagator
// has no notion of an undeclared signal.
//
// This is the inverse of the Expression Propagator (spec.md §4.5),
// which only ever reads expressions back out of an already-wired
// graph: Build lets a caller define combinational gates from a formula
// instead of wiring AND/OR/NOT/XOR primitives one at a time.
func Build(c *engine.Circuit, source string) (map[string]core.ID, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}

	env := make(map[string]core.ID)
	for _, assign := range prog.Assignments {
		id, err := buildNode(c, env, assign.Expr, assign.Name)
		if err != nil {
			return nil, err
		}
		env[assign.Name] = id
	}
	return env, nil
}

// buildNode expands n into wired gate instances, returning the id
// already carrying n's value. label names the gate this call creates
// directly (so the assignment's own name survives as the Instance's
// Label for OutputLabels/TrackOutput to find); it is never propagated
// to recursive sub-expression calls, which always pass "".
func buildNode(c *engine.Circuit, env map[string]core.ID, n *Node, label string) (core.ID, error) {
	switch n.Type {
	case NodeIdent:
		if id, ok := env[n.Value]; ok {
			return id, nil
		}
		if id, ok := c.InputByLabel(n.Value); ok {
			return id, nil
		}
		return core.NullID, core.ParseFailure(fmt.Sprintf("undeclared identifier %q", n.Value), 0)

	case NodeConstant:
		return c.AddConstant(n.Value == "1"), nil

	case NodeNot:
		return buildUnary(c, env, n, "NOT", label)

	case NodeAnd:
		return buildBinary(c, env, n, "AND", label)

	case NodeOr:
		return buildBinary(c, env, n, "OR", label)

	case NodeXor:
		return buildBinary(c, env, n, "XOR", label)

	default:
		return core.NullID, core.ParseFailure("unknown node type", 0)
	}
}

func buildUnary(c *engine.Circuit, env map[string]core.ID, n *Node, kind, label string) (core.ID, error) {
	operand, err := buildNode(c, env, n.Children[0], "")
	if err != nil {
		return core.NullID, err
	}
	id, err := c.AddComponent(kind, label)
	if err != nil {
		return core.NullID, err
	}
	if err := c.Connect(id, 1, operand); err != nil {
		return core.NullID, err
	}
	return id, nil
}

func buildBinary(c *engine.Circuit, env map[string]core.ID, n *Node, kind, label string) (core.ID, error) {
	left, err := buildNode(c, env, n.Children[0], "")
	if err != nil {
		return core.NullID, err
	}
	right, err := buildNode(c, env, n.Children[1], "")
	if err != nil {
		return core.NullID, err
	}
	id, err := c.AddComponent(kind, label)
	if err != nil {
		return core.NullID, err
	}
	if err := c.Connect(id, 1, left); err != nil {
		return core.NullID, err
	}
	if err := c.Connect(id, 2, right); err != nil {
		return core.NullID, err
	}
	return id, nil
}
