package order

import (
	"fmt"

	"siparisqr/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is a closed enumeration:
// unknown literals are rejected by ParseStatus and Validate rather than carried
// through the system.
//
// State transitions:
//
//	PENDING ──> PREPARING ──> READY ──> COMPLETED
//	   │            │
//	   └────────────┴──> CANCELLED
//
// COMPLETED and CANCELLED are terminal. The numeric value of a status is its
// kitchen priority, so ordering by status ascending puts new orders first.
type Status int

const (
	// Unknown (0) catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order was placed at the table.
	Pending

	// Preparing means the kitchen accepted the order.
	Preparing

	// Ready means the order waits to be served.
	Ready

	// Completed means the order was served. It is the canonical fulfilled
	// state; DELIVERED is not accepted as a synonym.
	Completed

	// Cancelled is reachable only from Pending or Preparing.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatuses() map[string]Status {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[string]Status{
		"PENDING":   Pending,
		"PREPARING": Preparing,
		"READY":     Ready,
		"COMPLETED": Completed,
		"CANCELLED": Cancelled,
	}
}

// nextStatuses is the forward step of the happy path.
var nextStatuses = map[Status]Status{
	Pending:   Preparing,
	Preparing: Ready,
	Ready:     Completed,
}

// AllStatuses lists every valid status in priority order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, Ready, Completed, Cancelled}
}

// ActiveStatuses lists the non-terminal statuses, the ones shown on the kitchen display.
func ActiveStatuses() []Status {
	return []Status{Pending, Preparing, Ready}
}

// ParseStatus converts an upper-case literal such as "PREPARING" into a Status.
//
// Returns a ValueIsInvalidError for any other literal, including lower-case
// spellings and "DELIVERED".
func ParseStatus(s string) (Status, error) {
	status, ok := getValidStatuses()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
	}
	return status, nil
}

// Validate checks if the Status value is one of the five defined states.
func (s Status) Validate() error {
	if _, ok := nextStatuses[s]; ok || s.IsTerminal() {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
}

// String returns the wire name of the status, e.g. "PREPARING".
// Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Priority is the kitchen display rank of s: PENDING=1 ... CANCELLED=5.
// Lower values are shown first.
func (s Status) Priority() int {
	return int(s)
}

// Next returns the single forward step from s.
//
// Returns:
//   - (PREPARING, true) for PENDING
//   - (READY, true) for PREPARING
//   - (COMPLETED, true) for READY
//   - (Unknown, false) for terminal and invalid statuses
func (s Status) Next() (Status, bool) {
	next, ok := nextStatuses[s]
	return next, ok
}

// CanCancel reports whether s may move to CANCELLED. Only PENDING and PREPARING can.
func (s Status) CanCancel() bool {
	return s == Pending || s == Preparing
}

// Transition validates a move from s to target.
//
// Valid transitions:
//   - target is the forward step of s (see Next)
//   - target is CANCELLED and s can be cancelled (see CanCancel)
//
// Any other pair, including staying in the same status, fails with an
// InvalidTransitionError. There is no coercion to a nearby valid state.
//
// Example:
//
//	next, err := order.Pending.Transition(order.Preparing) // PREPARING, nil
//	_, err = order.Completed.Transition(order.Preparing)   // InvalidTransitionError
func (s Status) Transition(target Status) (Status, error) {
	if next, ok := s.Next(); ok && next == target {
		return target, nil
	}
	if target == Cancelled && s.CanCancel() {
		return target, nil
	}
	return Unknown, &InvalidTransitionError{From: s, To: target}
}
