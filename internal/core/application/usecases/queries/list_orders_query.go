package queries

import (
	"errors"
	"slices"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders of a tenant, optionally limited to a set of
// statuses. An empty status set means every status.
//
// Example:
//
//	query, err := NewListOrdersQuery(tenantID, order.Pending, order.Preparing)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	tenantID kernel.UUID
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(tenantID kernel.UUID, statuses ...order.Status) (ListOrdersQuery, error) {
	if tenantID.IsZero() {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("tenantID")
	}
	var errList []error
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	filter := slices.Clone(statuses)
	slices.Sort(filter)
	return ListOrdersQuery{
		tenantID: tenantID,
		statuses: slices.Compact(filter),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) TenantID() kernel.UUID { return q.tenantID }

// Statuses returns the filter, sorted and without duplicates.
func (q ListOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}
