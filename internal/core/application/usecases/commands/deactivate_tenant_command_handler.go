package commands

import (
	"context"
	"fmt"

	"siparisqr/internal/core/ports"
)

// DeactivateTenantCommandHandler deactivates a tenant and evicts it from the
// lookup cache so its subdomain stops resolving right away.
type DeactivateTenantCommandHandler struct {
	uowFactory  TenantUoWFactory
	invalidator ports.TenantCacheInvalidator
}

func NewDeactivateTenantCommandHandler(
	uowFactory TenantUoWFactory,
	invalidator ports.TenantCacheInvalidator,
) DeactivateTenantCommandHandler {
	return DeactivateTenantCommandHandler{uowFactory: uowFactory, invalidator: invalidator}
}

func (h *DeactivateTenantCommandHandler) Handle(ctx context.Context, cmd DeactivateTenantCommand) error {
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

	repo := uow.TenantRepository()
	t, err := repo.Get(ctx, cmd.TenantID())
	if err != nil {
		return err
	}
	t.Deactivate()
	if err = repo.Update(ctx, t); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.invalidator != nil {
		if err = h.invalidator.Evict(ctx, t.Slug().String()); err != nil {
			return fmt.Errorf("tenant %s deactivated, cache eviction failed: %w", t.ID(), err)
		}
	}
	return nil
}
