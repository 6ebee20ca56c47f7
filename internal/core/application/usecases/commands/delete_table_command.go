package commands

import (
	"errors"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrDeleteTableCommandIsNotConstructed = errors.New(
	"DeleteTableCommand must be created via NewDeleteTableCommand constructor",
)

// DeleteTableCommand removes a table that has no active orders.
type DeleteTableCommand struct {
	tenantID kernel.UUID
	tableID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTableCommand(tenantID, tableID kernel.UUID) (DeleteTableCommand, error) {
	var errList []error
	if tenantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tenantID"))
	}
	if tableID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tableID"))
	}
	if err := errors.Join(errList...); err != nil {
		return DeleteTableCommand{}, err
	}
	return DeleteTableCommand{tenantID: tenantID, tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTableCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTableCommandIsNotConstructed)
}

func (c DeleteTableCommand) TenantID() kernel.UUID { return c.tenantID }
func (c DeleteTableCommand) TableID() kernel.UUID  { return c.tableID }
