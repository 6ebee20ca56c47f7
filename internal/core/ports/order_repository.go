package ports

import (
	"context"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates. Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when the order does not exist or belongs
	// to another tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the status and updatedAt of aggregate only if the stored
	// status still equals expected. Otherwise it returns errs.StaleStateError and
	// stores nothing.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// CountActiveByTable counts PENDING, PREPARING and READY orders of a table.
	CountActiveByTable(ctx context.Context, tenantID, tableID kernel.UUID) (int64, error)
}
