package commands

import (
	"errors"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to a new status. When expected is set,
// the change only applies if the order is still in that status, which lets a
// screen reject edits made on an outdated view.
type UpdateOrderStatusCommand struct {
	tenantID kernel.UUID
	orderID  kernel.UUID
	target   order.Status
	expected *order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	tenantID, orderID kernel.UUID,
	target order.Status,
	expected *order.Status,
) (UpdateOrderStatusCommand, error) {
	var errList []error
	if tenantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tenantID"))
	}
	if orderID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("orderID"))
	}
	errList = append(errList, target.Validate())
	if expected != nil {
		errList = append(errList, expected.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd := UpdateOrderStatusCommand{
		tenantID: tenantID,
		orderID:  orderID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}
	if expected != nil {
		e := *expected
		cmd.expected = &e
	}
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) TenantID() kernel.UUID { return c.tenantID }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID  { return c.orderID }
func (c UpdateOrderStatusCommand) Target() order.Status  { return c.target }

// Expected returns the status the caller last saw, if given.
func (c UpdateOrderStatusCommand) Expected() (order.Status, bool) {
	if c.expected == nil {
		return order.Unknown, false
	}
	return *c.expected, true
}
