package engine

import "github.com/xDarkicex/circuitsim/registry"

// oscillatorDef is a minimal one-data-pin combinational definition used
// by tests that need a gate without pulling in the full registry.
func oscillatorDef() registry.Definition {
	return registry.Definition{
		Kind:          "OSC",
		DefaultInputs: 1,
		Glyph:         "!",
		Category:      registry.Combinational,
		Eval:          func(pins []bool, state bool) bool { return !pins[0] },
	}
}
