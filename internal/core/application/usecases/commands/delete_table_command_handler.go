package commands

import (
	"context"
	"fmt"

	"siparisqr/internal/pkg/errs"
)

// DeleteTableCommandHandler deletes a table unless a PENDING, PREPARING or READY
// order still references it, in which case ObjectConflictError is returned and
// nothing changes.
type DeleteTableCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteTableCommandHandler(uowFactory OrderUoWFactory) DeleteTableCommandHandler {
	return DeleteTableCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteTableCommandHandler) Handle(ctx context.Context, cmd DeleteTableCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tables := uow.TableRepository()
	tbl, err := tables.Get(ctx, cmd.TenantID(), cmd.TableID())
	if err != nil {
		return err
	}

	active, err := uow.OrderRepository().CountActiveByTable(ctx, cmd.TenantID(), cmd.TableID())
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.NewObjectConflictErrorWithCause("table", tbl.Number(),
			fmt.Errorf("%d active orders reference it", active))
	}

	if err = tables.Delete(ctx, cmd.TenantID(), cmd.TableID()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
