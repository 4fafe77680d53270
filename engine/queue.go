package engine

import (
	"github.com/xDarkicex/circuitsim/core"
)

// Queue is the FIFO work list driving graph-act (spec.md §4.2). It
// never holds two identical adjacent identifiers: PushCoalesced checks
// the tail before appending, which is cheaper than full set membership
// and matches the tail-only coalescing rule described there.
type Queue struct {
	items []core.ID
}

// PushCoalesced appends id unless it already sits at the tail.
func (q *Queue) PushCoalesced(id core.ID) {
	if len(q.items) > 0 && q.items[len(q.items)-1] == id {
		return
	}
	q.items = append(q.items, id)
}

// PopFront removes and returns the head of the queue.
func (q *Queue) PopFront() (core.ID, bool) {
	if len(q.items) == 0 {
		return core.NullID, false
	}
	id := q.items[0]
	q.items = q.items[1:]
	return id, true
}

// Empty reports whether the queue has no pending work.
func (q *Queue) Empty() bool {
	return len(q.items) == 0
}

// Actor is applied to each node pulled from the BFS queue during
// graph-act. It may mutate its own node (g) directly and may write
// into neighbours (looked up from store by id) and enqueue them — the
// neighbour writes happen through store/q rather than through g, so no
// two instances are ever mutably aliased at once.
type Actor func(g *Instance, store *Store, q *Queue)

// DefaultPropagationLimit bounds the number of pops a single graph-act
// call will perform before giving up on an oscillating circuit
// (spec.md §5, §9's decided value of 5,000).
const DefaultPropagationLimit = 5000

// GraphAct seeds the queue with seeds (coalesced, in order), then
// repeatedly pops the head, looks it up in store, and invokes actor,
// until the queue drains or limit pops have occurred. Exceeding limit
// is reported as core.ErrPropagationLimitExceeded; the store is left
// with whatever partial state the traversal reached (spec.md §5, §7).
func GraphAct(op string, seeds []core.ID, store *Store, actor Actor, limit int) error {
	q := &Queue{}
	for _, id := range seeds {
		q.PushCoalesced(id)
	}

	iterations := 0
	for !q.Empty() {
		if iterations >= limit {
			return core.PropagationLimitExceeded(op, limit)
		}
		iterations++

		id, _ := q.PopFront()
		inst, ok := store.Get(id)
		if !ok {
			// Gate was removed mid-traversal (or a stale seed); skip it.
			continue
		}
		actor(inst, store, q)
	}
	return nil
}
