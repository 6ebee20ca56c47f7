package commands

import (
	"errors"
	"strings"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand adds a table to a tenant. The number must not be used by
// another live table of the same tenant.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID  kernel.UUID
	tenantID kernel.UUID
	number   string
	capacity int

	guard guard.ConstructorGuard
}

func NewCreateTableCommand(tableID, tenantID kernel.UUID, number string, capacity int) (CreateTableCommand, error) {
	cmd := CreateTableCommand{capacity: capacity, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setIDs(tableID, tenantID),
		cmd.setNumber(number),
	); err != nil {
		return CreateTableCommand{}, err
	}
	return cmd, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) TableID() kernel.UUID  { return c.tableID }
func (c CreateTableCommand) TenantID() kernel.UUID { return c.tenantID }
func (c CreateTableCommand) Number() string        { return c.number }
func (c CreateTableCommand) Capacity() int         { return c.capacity }

func (c *CreateTableCommand) setIDs(tableID, tenantID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	if tenantID.IsZero() {
		return errs.NewValueIsRequiredError("tenantID")
	}
	c.tableID, c.tenantID = tableID, tenantID
	return nil
}

func (c *CreateTableCommand) setNumber(number string) error {
	if c.number = strings.TrimSpace(number); c.number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	return nil
}
