package commands

import (
	"errors"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/guard"
)

var ErrDeactivateTenantCommandIsNotConstructed = errors.New(
	"DeactivateTenantCommand must be created via NewDeactivateTenantCommand constructor",
)

// DeactivateTenantCommand takes a tenant offline. Its data and slug are kept.
type DeactivateTenantCommand struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateTenantCommand(tenantID kernel.UUID) (DeactivateTenantCommand, error) {
	if err := tenantID.Validate(); err != nil {
		return DeactivateTenantCommand{}, err
	}
	return DeactivateTenantCommand{tenantID: tenantID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivateTenantCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateTenantCommandIsNotConstructed)
}

func (c DeactivateTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}
