package engine

import (
	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/registry"
)

// Store owns every live gate instance, keyed by its stable identifier,
// and the monotonic counter allocating new ones (spec.md §3's
// "Component Store"). Only the Circuit facade mutates a Store; gates
// are never shared outside one circuit's ownership.
type Store struct {
	instances map[core.ID]*Instance
	nextID    core.ID
}

// NewStore returns an empty Store with its identifier counter at zero.
func NewStore() *Store {
	return &Store{instances: make(map[core.ID]*Instance)}
}

// allocID returns the next strictly-increasing identifier. IDs are
// never reused, even after a gate bearing one is removed (spec.md §3
// invariant 5).
func (s *Store) allocID() core.ID {
	s.nextID++
	return s.nextID
}

// create allocates a new instance of kind def, with the given label,
// and inserts it into the store.
func (s *Store) create(def registry.Definition, label string) *Instance {
	id := s.allocID()
	inst := newInstance(id, def, label)
	s.instances[id] = inst
	return inst
}

// insert adds an already-constructed instance (used by AddInput, which
// builds its own Input-category instance).
func (s *Store) insert(inst *Instance) {
	s.instances[inst.ID] = inst
}

// Get returns the instance for id, or ok=false if none exists.
func (s *Store) Get(id core.ID) (*Instance, bool) {
	inst, ok := s.instances[id]
	return inst, ok
}

// Delete removes id from the store. It does not touch any edges; the
// caller (Circuit.RemoveComponent) is responsible for severing them
// first.
func (s *Store) Delete(id core.ID) {
	delete(s.instances, id)
}

// Len returns the number of live instances.
func (s *Store) Len() int {
	return len(s.instances)
}

// Each calls fn once per live instance. Iteration order is the Go map
// order (unspecified); callers that need a deterministic order (e.g.
// the truth table's column ordering) sort afterwards.
func (s *Store) Each(fn func(*Instance)) {
	for _, inst := range s.instances {
		fn(inst)
	}
}
