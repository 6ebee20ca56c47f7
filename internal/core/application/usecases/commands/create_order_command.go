package commands

import (
	"errors"
	"fmt"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is a requested product and quantity. Prices are not taken from the
// caller; they come from the catalog when the order is placed.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand places an order at a table of a tenant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), tenantID, tableID,
//	    []OrderLine{{ProductID: americanoID, Quantity: 2}}, "", "")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd) // o.Status() == order.Pending
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	tenantID     kernel.UUID
	tableID      kernel.UUID
	lines        []OrderLine
	customerName string
	notes        string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, tenantID, tableID kernel.UUID,
	lines []OrderLine,
	customerName, notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, tenantID, tableID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c CreateOrderCommand) TenantID() kernel.UUID { return c.tenantID }
func (c CreateOrderCommand) TableID() kernel.UUID  { return c.tableID }
func (c CreateOrderCommand) CustomerName() string  { return c.customerName }
func (c CreateOrderCommand) Notes() string         { return c.notes }

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setIDs(orderID, tenantID, tableID kernel.UUID) error {
	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if tenantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tenantID"))
	}
	if tableID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tableID"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.orderID, c.tenantID, c.tableID = orderID, tenantID, tableID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(lines) > order.MaxItems {
		return errs.NewValueIsOutOfRangeError("items", len(lines), 1, order.MaxItems)
	}
	for i, l := range lines {
		if l.ProductID.IsZero() {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].productId", i))
		}
		if l.Quantity < order.MinQuantity || l.Quantity > order.MaxQuantity {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", i),
				l.Quantity, order.MinQuantity, order.MaxQuantity)
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
