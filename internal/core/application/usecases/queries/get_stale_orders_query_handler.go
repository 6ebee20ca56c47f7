package queries

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"
)

type GetStaleOrdersQueryHandler struct {
	reader ports.OrderReader
	now    func() time.Time
}

func NewGetStaleOrdersQueryHandler(reader ports.OrderReader) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{reader: reader, now: time.Now}
}

// Handle returns the stale orders oldest first.
func (h GetStaleOrdersQueryHandler) Handle(ctx context.Context, query GetStaleOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.ListOrdersCreatedBefore(ctx, order.Pending, h.now().Add(-query.OlderThan()))
}
