package commands

import (
	"context"
	"fmt"
	"time"

	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"
)

// CreateOrderCommandHandler places a PENDING order.
//
// Steps:
//   - every product is fetched from the tenant's catalog before the transaction
//     starts, so no lock is held during catalog calls; another tenant's product
//     fails with ForbiddenError, an unknown one with ObjectNotFoundError and an
//     unavailable one with ValueIsInvalidError
//   - current prices are copied into the items and the total is frozen
//   - inside the transaction the table must belong to the tenant and be active,
//     otherwise ObjectNotFoundError
//
// A failed placement stores nothing.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.ProductCatalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory, catalog: catalog, now: time.Now}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := h.priceItems(ctx, cmd)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.TenantID(), cmd.TableID(), items,
		cmd.CustomerName(), cmd.Notes(), h.now())
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tbl, err := uow.TableRepository().Get(ctx, cmd.TenantID(), cmd.TableID())
	if err != nil {
		return nil, err
	}
	if !tbl.IsActive() {
		return nil, errs.NewObjectNotFoundErrorWithCause("table", cmd.TableID(),
			fmt.Errorf("table %s is not active", tbl.Number()))
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (h *CreateOrderCommandHandler) priceItems(ctx context.Context, cmd CreateOrderCommand) ([]order.Item, error) {
	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		product, err := h.catalog.GetProduct(ctx, cmd.TenantID(), line.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.BelongsTo(cmd.TenantID()) {
			return nil, errs.NewForbiddenError(fmt.Sprintf("product %s belongs to another tenant", line.ProductID))
		}
		if !product.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause("product",
				fmt.Errorf("%s is not available", product.Name()))
		}

		item, err := order.NewItem(product.ID(), product.Name(), line.Quantity, product.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
