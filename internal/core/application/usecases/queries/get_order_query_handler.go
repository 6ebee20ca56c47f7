package queries

import (
	"context"

	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns ObjectNotFoundError for orders of other tenants, the same as
// for missing ones.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.reader.GetOrder(ctx, query.TenantID(), query.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(query.TenantID()) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	return o, nil
}
