package engine

import (
	"github.com/xDarkicex/circuitsim/core"
)

// StateActor builds the graph-act actor implementing the State
// Propagator (spec.md §4.3). When optimise is true, a node that
// re-evaluates to its previous value stops without touching consumers
// — the termination oracle that lets cyclic circuits quiesce.
//
// When optimise is false (power_on), every node still only gets its
// unconditional force-push on the FIRST visit of this traversal; a node
// that comes back around a second time (only possible if it sits on a
// cycle) falls back to the same change-detection rule as the optimised
// case. A literal "always push, never compare" reading of power_on
// would never terminate on a purely-combinational cycle such as a
// cross-coupled latch, since nothing would ever stop the two halves
// re-enqueuing each other; "forces one pass even on unchanged nodes" is
// satisfied by forcing exactly one pass per node, not unboundedly many.
func StateActor(optimise bool) Actor {
	visited := make(map[core.ID]bool)
	return func(g *Instance, store *Store, q *Queue) {
		newState := g.computeState()

		forced := !optimise && !visited[g.ID]
		visited[g.ID] = true

		if !forced && newState == g.State {
			return
		}
		g.State = newState

		for _, e := range g.Forward {
			recv, ok := store.Get(e.Receiver)
			if !ok {
				continue
			}
			recv.setPinValue(e.Pin, newState)
			if e.Pin == 0 && recv.Detector != nil {
				recv.Detector.Push(newState)
			}
			q.PushCoalesced(e.Receiver)
		}
	}
}

// computeState implements step 1 of spec.md §4.3: sequential gates
// only recompute on a detected rising edge of pin 0 (and reset the
// detector when they do); every other gate (including Input, whose
// evaluator is the identity on its own externally-driven state)
// recomputes from its current data pins and state on every visit.
func (g *Instance) computeState() bool {
	if g.Detector != nil {
		if g.Detector.Triggered() {
			g.Detector.Reset()
			return g.Eval(g.DataPinValues(), g.State)
		}
		return g.State
	}
	return g.Eval(g.DataPinValues(), g.State)
}

// Refresh runs an optimised state propagation seeded at ids: the entry
// point used after set_state, connect, disconnect and pulse_clock.
func Refresh(store *Store, limit int, ids ...core.ID) error {
	return GraphAct("refresh", ids, store, StateActor(true), limit)
}

// PowerOn runs a non-optimised state propagation seeded at ids: the
// entry point used once, at circuit power-on, to force initial values
// through combinational logic that has never been evaluated.
func PowerOn(store *Store, limit int, ids ...core.ID) error {
	return GraphAct("power_on", ids, store, StateActor(false), limit)
}
