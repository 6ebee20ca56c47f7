// Package notify delivers operational notices. The logging notifier writes them
// to the service log where alerting picks them up.
package notify

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"

	"go.uber.org/zap"
)

type LogStaleOrderNotifier struct {
	logger *zap.Logger
	now    func() time.Time
}

var _ ports.StaleOrderNotifier = (*LogStaleOrderNotifier)(nil)

func NewLogStaleOrderNotifier(logger *zap.Logger) *LogStaleOrderNotifier {
	return &LogStaleOrderNotifier{
		logger: logger.With(zap.String("component", "stale_order_notifier")),
		now:    time.Now,
	}
}

// NotifyStaleOrders logs one warning per order.
func (n *LogStaleOrderNotifier) NotifyStaleOrders(ctx context.Context, orders []*order.Order) error {
	now := n.now()
	for _, o := range orders {
		if err := ctx.Err(); err != nil {
			return err
		}
		n.logger.Warn("Order waiting for the kitchen",
			zap.String("tenantId", o.TenantID().String()),
			zap.String("orderId", o.ID().String()),
			zap.String("tableId", o.TableID().String()),
			zap.Duration("waiting", now.Sub(o.CreatedAt()).Truncate(time.Second)),
		)
	}
	return nil
}
