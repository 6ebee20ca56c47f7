package order

import (
	"fmt"

	"siparisqr/internal/pkg/errs"
)

// ErrInvalidTransition is matched by every InvalidTransitionError. A disallowed
// transition target is a forbidden operation, so it also matches errs.ErrForbidden.
var ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", errs.ErrForbidden)

// InvalidTransitionError reports a status change the state machine does not allow.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
