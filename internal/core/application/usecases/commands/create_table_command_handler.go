package commands

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/table"
)

// CreateTableCommandHandler stores a new active table.
// Concurrent creations with the same number are serialized by the repository:
// exactly one succeeds, the others get ObjectConflictError.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
	now        func() time.Time
}

func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tbl, err := table.NewTable(cmd.TableID(), cmd.TenantID(), cmd.Number(), cmd.Capacity(), h.now())
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

	if err = uow.TableRepository().Add(ctx, tbl); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return tbl, nil
}
