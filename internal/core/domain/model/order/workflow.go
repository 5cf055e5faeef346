package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a status change is not permitted by
// the order workflow. The message always names the source and target status.
var ErrIllegalTransition = errors.New("status transition is not allowed")

// allowedTransitions is the workflow definition of the order lifecycle.
// Every transition check in the package consults this table, so a workflow
// change here is picked up by the status methods and the aggregate alike.
//
// Terminal statuses map to an empty list.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Confirmed, Cancelled},
		Confirmed: {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// CanTransition reports whether the workflow permits moving from one status
// to another. Invalid statuses never participate in transitions.
func CanTransition(from, to Status) bool {
	for _, allowed := range allowedTransitions()[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from the given one.
// The returned slice is a copy and may be mutated freely. Terminal and
// invalid statuses yield an empty slice.
func AllowedTransitions(from Status) []Status {
	targets := allowedTransitions()[from]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// IsTerminal reports whether no further transitions are possible from the
// status. Only Delivered and Cancelled are terminal; invalid statuses are
// not terminal, they are simply invalid.
func (s Status) IsTerminal() bool {
	targets, ok := allowedTransitions()[s]
	return ok && len(targets) == 0
}

// TransitionTo performs a workflow-checked transition to the target status.
//
// Returns:
//   - (target, nil) when the workflow permits the transition
//   - (0, error) wrapping ErrIllegalTransition otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !CanTransition(s, target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}

	return target, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
func (s Status) Confirm() (Status, error) {
	return s.TransitionTo(Confirmed)
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
func (s Status) Ship() (Status, error) {
	return s.TransitionTo(Shipped)
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
func (s Status) Deliver() (Status, error) {
	return s.TransitionTo(Delivered)
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled
//   - Confirmed -> Cancelled
//
// Orders that already shipped cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
