package queries

import (
	"errors"
	"fmt"
	"time"

	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery finds PENDING orders that nobody has picked up for longer
// than olderThan, across all tenants.
type GetStaleOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewGetStaleOrdersQuery(olderThan time.Duration) (GetStaleOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStaleOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s must be positive", olderThan))
	}
	return GetStaleOrdersQuery{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

func (q GetStaleOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}
