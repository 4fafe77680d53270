package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error represents a failure in a circuit operation. It carries the
// failing operation's name so callers and logs can tell which facade
// call produced it, matching the closed taxonomy in spec.md §7.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("circuitsim: %s: %s", e.Op, e.Message)
}

func newError(op, message string) *Error {
	return &Error{Op: op, Message: message}
}

// Sentinel errors. Use errors.Is / errors.Cause (github.com/pkg/errors)
// to recover one of these from an error that has been wrapped with
// positional context (e.g. remove_component wrapping a victim's id).
var (
	ErrUnknownKind             = newError("", "unknown gate kind")
	ErrUnknownID               = newError("", "unknown component id")
	ErrPinOutOfRange           = newError("", "pin out of range")
	ErrEdgeAbsent              = newError("", "edge not present")
	ErrSelfConnectionRejected  = newError("", "self-connection rejected")
	ErrNotPoweredOn            = newError("", "circuit is not powered on")
	ErrPropagationLimitExceeded = newError("", "propagation limit exceeded")
	ErrNoClockConfigured       = newError("", "no clock source configured")
	ErrParseFailure            = newError("", "expression parse failure")
)

// UnknownKind reports that op was asked to use a gate kind name that was
// never registered.
func UnknownKind(op, name string) error {
	return errors.Wrapf(ErrUnknownKind, "%s: kind %q", op, name)
}

// UnknownID reports that op referenced a component id that does not
// exist in the store.
func UnknownID(op string, id ID) error {
	return errors.Wrapf(ErrUnknownID, "%s: id %d", op, id)
}

// PinOutOfRange reports an out-of-bounds pin index.
func PinOutOfRange(op string, pin, pinCount int) error {
	return errors.Wrapf(ErrPinOutOfRange, "%s: pin %d (have %d pins)", op, pin, pinCount)
}

// EdgeAbsent reports a disconnect of an edge that was never connected.
func EdgeAbsent(op string, emit, recv ID, pin int) error {
	return errors.Wrapf(ErrEdgeAbsent, "%s: %d -> %d pin %d", op, emit, recv, pin)
}

// SelfConnectionRejected reports that id tried to connect to itself.
// circuitsim's chosen policy (spec.md §9 Open Question) is to reject,
// not silently accept.
func SelfConnectionRejected(op string, id ID) error {
	return errors.Wrapf(ErrSelfConnectionRejected, "%s: id %d", op, id)
}

// NotPoweredOn reports a state mutation attempted before PowerOn.
func NotPoweredOn(op string) error {
	return errors.Wrapf(ErrNotPoweredOn, "%s", op)
}

// PropagationLimitExceeded reports that a single graph-act traversal
// exceeded its safety cap (spec.md §5, §9) without quiescing. The
// caller still observes whatever partial state was reached.
func PropagationLimitExceeded(op string, limit int) error {
	return errors.Wrapf(ErrPropagationLimitExceeded, "%s: exceeded %d iterations", op, limit)
}

// ParseFailure reports a lexical or syntactic error at the given byte
// position in an expression (parsing package). Not part of spec.md §7's
// facade taxonomy — the expression grammar is a SPEC_FULL.md addition
// layered on top of the facade, not a facade operation itself.
func ParseFailure(message string, position int) error {
	return errors.Wrapf(ErrParseFailure, "%s (at %d)", message, position)
}

// WrapComponent annotates err with the identifier of the component whose
// sub-operation failed, per the remove_component propagation policy in
// spec.md §7: the failure is wrapped but the caller (remove_component)
// proceeds regardless.
func WrapComponent(err error, id ID) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "component %d", id)
}
