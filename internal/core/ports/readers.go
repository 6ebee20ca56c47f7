package ports

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
)

// OrderReader is the read side used by the kitchen display, the table view and the
// dashboard. Reads see committed data only and run concurrently with writers.
type OrderReader interface {
	// ListOrders returns the orders of a tenant, optionally limited to statuses,
	// ordered by status priority ascending then creation time ascending.
	ListOrders(ctx context.Context, tenantID kernel.UUID, statuses []order.Status) ([]*order.Order, error)

	GetOrder(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// ListOrdersCreatedBefore returns orders in status created before the given time,
	// across all tenants, oldest first.
	ListOrdersCreatedBefore(ctx context.Context, status order.Status, before time.Time) ([]*order.Order, error)

	// Stats aggregates orders created in [from, to).
	Stats(ctx context.Context, tenantID kernel.UUID, from, to time.Time) (OrderStats, error)
}

// OrderStats is the order part of the dashboard.
type OrderStats struct {
	// Created counts orders created in the period.
	Created int64
	// Revenue sums the totals of COMPLETED orders created in the period.
	Revenue kernel.Money
	// Active counts non-terminal orders regardless of the period.
	Active int64
}

// TableReader lists tables without taking locks.
type TableReader interface {
	// ListTables returns live tables of a tenant ordered by number.
	ListTables(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error)
	CountTables(ctx context.Context, tenantID kernel.UUID) (int64, error)
}

// SlugReader answers slug availability questions for the registration portal.
type SlugReader interface {
	ListSlugs(ctx context.Context) ([]string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}
