package ports

import (
	"context"

	"siparisqr/internal/core/domain/model/order"
)

// StaleOrderNotifier reports orders that have waited too long for the kitchen.
// Delivery (e-mail, SMS, pager) is up to the implementation.
type StaleOrderNotifier interface {
	NotifyStaleOrders(ctx context.Context, orders []*order.Order) error
}
