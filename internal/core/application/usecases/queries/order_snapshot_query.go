package queries

import (
	"errors"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/guard"
)

var ErrOrderSnapshotQueryIsNotConstructed = errors.New(
	"OrderSnapshotQuery must be created via NewOrderSnapshotQuery constructor",
)

// OrderSnapshotQuery asks for the current view of a tenant's orders, as polled by
// the kitchen display and the table screen. Without statuses it returns the
// active orders (PENDING, PREPARING, READY).
type OrderSnapshotQuery struct {
	list ListOrdersQuery

	guard guard.ConstructorGuard
}

func NewOrderSnapshotQuery(tenantID kernel.UUID, statuses ...order.Status) (OrderSnapshotQuery, error) {
	if len(statuses) == 0 {
		statuses = order.ActiveStatuses()
	}
	list, err := NewListOrdersQuery(tenantID, statuses...)
	if err != nil {
		return OrderSnapshotQuery{}, err
	}
	return OrderSnapshotQuery{list: list, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrOrderSnapshotQueryIsNotConstructed)
}

func (q OrderSnapshotQuery) TenantID() kernel.UUID    { return q.list.TenantID() }
func (q OrderSnapshotQuery) Statuses() []order.Status { return q.list.Statuses() }

// OrderSnapshot is one poll result. Clients poll again after PollAfter or when
// the user asks for a refresh.
type OrderSnapshot struct {
	Orders    []*order.Order
	TakenAt   time.Time
	PollAfter time.Duration
}
