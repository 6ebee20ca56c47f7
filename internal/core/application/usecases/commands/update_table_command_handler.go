package commands

import (
	"context"
	"errors"

	"siparisqr/internal/core/domain/model/table"
)

type UpdateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewUpdateTableCommandHandler(uowFactory TableUoWFactory) UpdateTableCommandHandler {
	return UpdateTableCommandHandler{uowFactory: uowFactory}
}

// Handle applies the changes and returns the updated table. Renumbering to a
// number already in use fails with ObjectConflictError.
func (h *UpdateTableCommandHandler) Handle(ctx context.Context, cmd UpdateTableCommand) (*table.Table, error) {
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

	repo := uow.TableRepository()
	tbl, err := repo.Get(ctx, cmd.TenantID(), cmd.TableID())
	if err != nil {
		return nil, err
	}

	if err = applyTableChanges(tbl, cmd.Changes()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, tbl); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return tbl, nil
}

func applyTableChanges(tbl *table.Table, changes TableChanges) error {
	var errList []error
	if changes.Number != nil {
		errList = append(errList, tbl.Renumber(*changes.Number))
	}
	if changes.Capacity != nil {
		errList = append(errList, tbl.Resize(*changes.Capacity))
	}
	if changes.Active != nil {
		if *changes.Active {
			tbl.Activate()
		} else {
			tbl.Deactivate()
		}
	}
	return errors.Join(errList...)
}
