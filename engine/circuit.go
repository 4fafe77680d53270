package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/registry"
)

// Circuit is the public API described in spec.md §4.6: it owns the
// registry, the instance store, labelled-input lookup, tracked
// outputs, the clock source, and the powered-on flag.
type Circuit struct {
	registry *registry.Registry
	store    *Store

	inputsByLabel map[string]core.ID
	outputs       map[core.ID]struct{}
	pinned        map[core.ID]struct{}

	clockSource core.ID
	poweredOn   bool

	limit int
	log   zerolog.Logger
}

// Option configures a Circuit at construction.
type Option func(*Circuit)

// WithPropagationLimit overrides DefaultPropagationLimit.
func WithPropagationLimit(limit int) Option {
	return func(c *Circuit) { c.limit = limit }
}

// WithLogger attaches a zerolog.Logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Circuit) { c.log = l }
}

// New returns a Circuit seeded with the built-in gate registry, not yet
// powered on.
func New(opts ...Option) *Circuit {
	c := &Circuit{
		registry:      registry.New(),
		store:         NewStore(),
		inputsByLabel: make(map[string]core.ID),
		outputs:       make(map[core.ID]struct{}),
		pinned:        make(map[core.ID]struct{}),
		clockSource:   core.NullID,
		limit:         DefaultPropagationLimit,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterKind adds or overwrites a gate definition (spec.md §4.1).
func (c *Circuit) RegisterKind(def registry.Definition) {
	c.registry.Register(def)
}

// AddComponent creates a new instance of kind with the given label and
// returns its id. Fails with core.ErrUnknownKind if kind was never
// registered.
func (c *Circuit) AddComponent(kind, label string) (core.ID, error) {
	def, err := c.registry.MustLookup("AddComponent", kind)
	if err != nil {
		return core.NullID, err
	}
	inst := c.store.create(def, label)
	c.log.Debug().Str("kind", kind).Str("label", label).Int64("id", int64(inst.ID)).Msg("component added")
	return inst.ID, nil
}

// AddInput creates a new Input gate with the given label and initial
// value, registers it under that label, and returns its id. Never
// fails.
func (c *Circuit) AddInput(label string, init bool) core.ID {
	def, _ := c.registry.MustLookup("AddInput", "Input")
	id := c.store.allocID()
	inst := newInstance(id, def, label)
	inst.State = init
	inst.StateExpr = label
	c.store.insert(inst)
	c.inputsByLabel[label] = id
	c.log.Debug().Str("label", label).Bool("init", init).Int64("id", int64(id)).Msg("input added")
	return id
}

// AddConstant creates an Input-category gate pinned to value, never
// registered under a label and never enumerated as a driving signal by
// TruthTable (engine/table.go's drivingSignals): it is seeded once like
// any other Input (so downstream combinational logic sees its value)
// but brute-force unpacking never overwrites it and never treats it as
// a free variable. Used for the Boolean literals (`0`/`1`) the
// expression grammar (parsing package) allows inside a formula, where a
// literal must stay fixed rather than become an independently
// toggleable input.
func (c *Circuit) AddConstant(value bool) core.ID {
	def, _ := c.registry.MustLookup("AddConstant", "Input")
	id := c.store.allocID()
	label := "0"
	if value {
		label = "1"
	}
	inst := newInstance(id, def, label)
	inst.State = value
	c.store.insert(inst)
	c.pinned[id] = struct{}{}
	c.log.Debug().Bool("value", value).Int64("id", int64(id)).Msg("constant added")
	return id
}

// RemoveComponent deletes id and severs every incident edge, then
// re-propagates so each former consumer recomputes with its now
// dangling pin (spec.md §4.6's remove algorithm). The first failure from
// the per-edge disconnects or the final propagation is wrapped with the
// victim's id and returned, but removal proceeds regardless per spec.md
// §7's propagation policy.
func (c *Circuit) RemoveComponent(id core.ID) error {
	victim, ok := c.store.Get(id)
	if !ok {
		return core.UnknownID("RemoveComponent", id)
	}

	var firstErr error
	note := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = core.WrapComponent(err, id)
		}
	}

	// Sever incoming edges: any live gate whose forward set contains an
	// edge pointing at id.
	c.store.Each(func(g *Instance) {
		if g.ID == id {
			return
		}
		for _, e := range append([]Edge(nil), g.Forward...) {
			if e.Receiver == id {
				if !g.removeForward(e) {
					note(core.EdgeAbsent("RemoveComponent", g.ID, id, e.Pin))
				}
			}
		}
	})

	// Collect former consumers of the victim's own forward edges, and
	// clear their pin slot (source NULL, value false, expression empty)
	// so the seeded propagation below recomputes them from a pin
	// dangling at 0.
	formerConsumers := make([]core.ID, 0, len(victim.Forward))
	for _, e := range victim.Forward {
		recv, ok := c.store.Get(e.Receiver)
		if !ok {
			continue
		}
		recv.Pins[e.Pin] = Pin{Source: core.NullID, Value: false, Expr: ""}
		formerConsumers = append(formerConsumers, e.Receiver)
	}

	if _, wasOutput := c.outputs[id]; wasOutput {
		delete(c.outputs, id)
	}
	for label, lid := range c.inputsByLabel {
		if lid == id {
			delete(c.inputsByLabel, label)
		}
	}
	if c.clockSource == id {
		c.clockSource = core.NullID
	}

	c.store.Delete(id)
	c.log.Debug().Int64("id", int64(id)).Msg("component removed")

	if err := Refresh(c.store, c.limit, formerConsumers...); err != nil {
		note(err)
	}

	return firstErr
}

// Connect wires emit's output into recv's pin, validating both
// endpoints and the pin bound, rejecting self-connections (spec.md §9's
// decided policy), then re-propagating state and expressions from recv
// (spec.md §4.6's connect algorithm). A validation failure returns
// before any edge change is committed; a propagation failure returns
// after the edge has been wired, and the edge stays in place.
func (c *Circuit) Connect(recv core.ID, pin int, emit core.ID) error {
	if recv == emit {
		return core.SelfConnectionRejected("Connect", recv)
	}

	recvInst, ok := c.store.Get(recv)
	if !ok {
		return core.UnknownID("Connect", recv)
	}
	emitInst, ok := c.store.Get(emit)
	if !ok {
		return core.UnknownID("Connect", emit)
	}
	if pin < 0 || pin >= len(recvInst.Pins) {
		return core.PinOutOfRange("Connect", pin, len(recvInst.Pins))
	}

	emitInst.addForward(Edge{Receiver: recv, Pin: pin})
	recvInst.Pins[pin].Source = emit
	recvInst.Pins[pin].Value = emitInst.State
	recvInst.Pins[pin].Expr = emitInst.StateExpr
	if pin == 0 && recvInst.Detector != nil {
		recvInst.Detector.Push(emitInst.State)
	}

	if err := Refresh(c.store, c.limit, recv); err != nil {
		return err
	}
	if err := PropagateExpr(c.store, c.limit, recv); err != nil {
		return err
	}

	c.log.Debug().Int64("recv", int64(recv)).Int("pin", pin).Int64("emit", int64(emit)).Msg("connected")
	return nil
}

// Disconnect removes the (recv, pin, emit) edge and clears recv's pin
// slot, then re-propagates (spec.md §4.6's disconnect algorithm). A
// validation failure or an absent edge returns before any edge change is
// committed; a propagation failure returns after the edge has been
// removed, and it stays removed.
func (c *Circuit) Disconnect(recv core.ID, pin int, emit core.ID) error {
	recvInst, ok := c.store.Get(recv)
	if !ok {
		return core.UnknownID("Disconnect", recv)
	}
	emitInst, ok := c.store.Get(emit)
	if !ok {
		return core.UnknownID("Disconnect", emit)
	}
	if pin < 0 || pin >= len(recvInst.Pins) {
		return core.PinOutOfRange("Disconnect", pin, len(recvInst.Pins))
	}

	if !emitInst.removeForward(Edge{Receiver: recv, Pin: pin}) {
		return core.EdgeAbsent("Disconnect", emit, recv, pin)
	}

	recvInst.Pins[pin] = Pin{Source: core.NullID, Value: false, Expr: ""}

	if err := Refresh(c.store, c.limit, recv); err != nil {
		return err
	}
	if err := PropagateExpr(c.store, c.limit, recv); err != nil {
		return err
	}

	c.log.Debug().Int64("recv", int64(recv)).Int("pin", pin).Int64("emit", int64(emit)).Msg("disconnected")
	return nil
}

// SetState writes v into id's output and propagates it to every
// forward-edge receiver. Fails unless the circuit is powered on
// (spec.md §4.6).
func (c *Circuit) SetState(id core.ID, v bool) error {
	if !c.poweredOn {
		return core.NotPoweredOn("SetState")
	}
	inst, ok := c.store.Get(id)
	if !ok {
		return core.UnknownID("SetState", id)
	}

	inst.State = v
	seeds := make([]core.ID, 0, len(inst.Forward))
	for _, e := range inst.Forward {
		recv, ok := c.store.Get(e.Receiver)
		if !ok {
			continue
		}
		recv.setPinValue(e.Pin, v)
		if e.Pin == 0 && recv.Detector != nil {
			recv.Detector.Push(v)
		}
		seeds = append(seeds, e.Receiver)
	}

	return Refresh(c.store, c.limit, seeds...)
}

// TrackOutput marks id as a tracked output, included in future truth
// tables. Returns false if id does not exist.
func (c *Circuit) TrackOutput(id core.ID) bool {
	if _, ok := c.store.Get(id); !ok {
		return false
	}
	c.outputs[id] = struct{}{}
	return true
}

// InputByLabel returns the id of the Input registered under label by
// AddInput, or ok=false if no such label exists. Used by parsing.Build
// to resolve identifiers in a formula against already-wired inputs.
func (c *Circuit) InputByLabel(label string) (core.ID, bool) {
	id, ok := c.inputsByLabel[label]
	return id, ok
}

// SetClock designates id as the clock source used by PulseClock.
func (c *Circuit) SetClock(id core.ID) {
	c.clockSource = id
}

// PulseClock toggles the clock source's value, then toggles it back,
// each toggle a full propagation — net effect one rising edge and one
// falling edge observed by every downstream edge detector (spec.md
// §4.6). A no-op if no clock is configured.
func (c *Circuit) PulseClock() error {
	if c.clockSource == core.NullID {
		return nil
	}
	clk, ok := c.store.Get(c.clockSource)
	if !ok {
		return nil
	}

	if err := c.SetState(clk.ID, !clk.State); err != nil {
		return err
	}
	clk, _ = c.store.Get(c.clockSource)
	return c.SetState(clk.ID, !clk.State)
}

// State returns id's current boolean output, or ok=false if id does not
// exist.
func (c *Circuit) State(id core.ID) (bool, bool) {
	inst, ok := c.store.Get(id)
	if !ok {
		return false, false
	}
	return inst.State, true
}

// Component returns the live instance for id, for read-only inspection
// by callers such as internal/tui and internal/server. Returns ok=false
// if id does not exist.
func (c *Circuit) Component(id core.ID) (*Instance, bool) {
	return c.store.Get(id)
}

// Components returns every live instance, for callers that need to
// enumerate the whole circuit (e.g. a UI redraw).
func (c *Circuit) Components() []*Instance {
	out := make([]*Instance, 0, c.store.Len())
	c.store.Each(func(g *Instance) { out = append(out, g) })
	return out
}

// Compile seeds an expression propagation from every Input and every
// Sequential gate except the clock source, so every reachable
// combinational gate acquires a formula (spec.md §4.6).
func (c *Circuit) Compile() error {
	runID := uuid.NewString()
	log := c.log.With().Str("run", runID).Logger()

	seeds := c.exprSeeds()
	log.Debug().Int("seeds", len(seeds)).Msg("compile")
	return PropagateExpr(c.store, c.limit, seeds...)
}

// PowerOn marks the circuit powered on and runs one non-optimised state
// pass from the same seed set Compile uses, so initial values reach
// combinational logic that has never been evaluated (spec.md §4.6,
// §9's "change detection as termination oracle").
func (c *Circuit) PowerOn() error {
	c.poweredOn = true
	seeds := c.exprSeeds()
	c.log.Info().Int("seeds", len(seeds)).Msg("power on")
	return PowerOn(c.store, c.limit, seeds...)
}

// exprSeeds returns every Input id and every Sequential id other than
// the clock source, the seed set both Compile and PowerOn use.
func (c *Circuit) exprSeeds() []core.ID {
	var seeds []core.ID
	c.store.Each(func(g *Instance) {
		switch g.Category {
		case registry.Input:
			if g.ID != c.clockSource {
				seeds = append(seeds, g.ID)
			}
		case registry.Sequential:
			if g.ID != c.clockSource {
				seeds = append(seeds, g.ID)
			}
		}
	})
	return seeds
}
