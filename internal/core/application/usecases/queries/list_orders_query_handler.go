package queries

import (
	"context"

	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"
)

// ListOrdersQueryHandler returns orders in kitchen order: status priority
// ascending (PENDING, PREPARING, READY, COMPLETED, CANCELLED), then creation
// time ascending. The order is enforced here as well so every reader
// implementation yields the same sequence.
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.ListOrders(ctx, query.TenantID(), query.Statuses())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	order.SortForKitchen(orders)
	return orders, nil
}
