package commands

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status transition atomically.
//
// The order is read without a lock, the transition is validated by the state
// machine, and the write is a compare-and-set on the status that was read. Of
// two racing transitions on the same order exactly one is stored; the other
// gets StaleStateError. A disallowed target gets InvalidTransitionError. In both
// cases the stored order is unchanged.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	current := o.Status()
	if expected, ok := cmd.Expected(); ok && expected != current {
		return nil, errs.NewStaleStateError("order", o.ID(), expected)
	}

	if err = o.ChangeStatus(cmd.Target(), h.now()); err != nil {
		return nil, err
	}
	if err = repo.UpdateStatus(ctx, o, current); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
