package commands

import (
	"errors"
	"strings"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrRegisterTenantCommandIsNotConstructed = errors.New(
	"RegisterTenantCommand must be created via NewRegisterTenantCommand constructor",
)

// RegisterTenantCommand signs up a restaurant. When desiredSlug is empty the slug
// is derived from the name and made unique; otherwise the desired slug is used
// as given or the registration fails.
//
// Example:
//
//	cmd, err := NewRegisterTenantCommand(kernel.NewUUID(), "Kahve Durağı", "")
//	if err != nil {
//	    return err
//	}
//	t, err := handler.Handle(ctx, cmd) // t.Slug() == "kahve-dura"
type RegisterTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID    kernel.UUID
	name        string
	desiredSlug string

	guard guard.ConstructorGuard
}

func NewRegisterTenantCommand(tenantID kernel.UUID, name, desiredSlug string) (RegisterTenantCommand, error) {
	cmd := RegisterTenantCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setName(name),
	); err != nil {
		return RegisterTenantCommand{}, err
	}
	cmd.desiredSlug = strings.TrimSpace(desiredSlug)
	return cmd, nil
}

func (c RegisterTenantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTenantCommandIsNotConstructed)
}

func (c RegisterTenantCommand) TenantID() kernel.UUID { return c.tenantID }
func (c RegisterTenantCommand) Name() string          { return c.name }
func (c RegisterTenantCommand) DesiredSlug() string   { return c.desiredSlug }

func (c *RegisterTenantCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tenantID = id
	return nil
}

func (c *RegisterTenantCommand) setName(name string) error {
	if c.name = strings.TrimSpace(name); c.name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
