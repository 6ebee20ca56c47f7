package commands

import (
	"errors"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrUpdateTableCommandIsNotConstructed = errors.New(
	"UpdateTableCommand must be created via NewUpdateTableCommand constructor",
)

// TableChanges lists the fields to change. Nil fields are left as they are.
type TableChanges struct {
	Number   *string
	Capacity *int
	Active   *bool
}

func (c TableChanges) isEmpty() bool {
	return c.Number == nil && c.Capacity == nil && c.Active == nil
}

// UpdateTableCommand edits a table of a tenant.
type UpdateTableCommand struct {
	tenantID kernel.UUID
	tableID  kernel.UUID
	changes  TableChanges

	guard guard.ConstructorGuard
}

func NewUpdateTableCommand(tenantID, tableID kernel.UUID, changes TableChanges) (UpdateTableCommand, error) {
	var errList []error
	if tenantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tenantID"))
	}
	if tableID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tableID"))
	}
	if changes.isEmpty() {
		errList = append(errList, errs.NewValueIsRequiredError("changes"))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateTableCommand{}, err
	}

	return UpdateTableCommand{
		tenantID: tenantID,
		tableID:  tableID,
		changes:  changes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTableCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableCommandIsNotConstructed)
}

func (c UpdateTableCommand) TenantID() kernel.UUID { return c.tenantID }
func (c UpdateTableCommand) TableID() kernel.UUID  { return c.tableID }
func (c UpdateTableCommand) Changes() TableChanges { return c.changes }
