// Package cart models the basket a guest fills at the table before placing an
// order. It has no storage; a cart lives as long as the request or client
// session that builds it.
package cart

import (
	"slices"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"
)

// Line is one product in the cart. UnitPrice is the price shown to the guest;
// the order takes its own snapshot from the catalog when it is placed.
type Line struct {
	ProductID kernel.UUID
	UnitPrice kernel.Money
	Quantity  int
}

// Cart keeps lines in the order products were first added. Adding a product
// again increases the quantity of its existing line.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of a product into the cart.
func (c *Cart) Add(productID kernel.UUID, unitPrice kernel.Money, quantity int) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	if quantity < order.MinQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}

	if i := c.index(productID); i >= 0 {
		merged := c.lines[i].Quantity + quantity
		if merged > order.MaxQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", merged, order.MinQuantity, order.MaxQuantity)
		}
		c.lines[i].Quantity = merged
		return nil
	}

	if quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}
	if len(c.lines) == order.MaxItems {
		return errs.NewValueIsOutOfRangeError("lines", len(c.lines)+1, 1, order.MaxItems)
	}
	c.lines = append(c.lines, Line{ProductID: productID, UnitPrice: unitPrice, Quantity: quantity})
	return nil
}

// Remove takes one unit of a product out of the cart and drops the line when it
// reaches zero. Removing an absent product is a no-op.
func (c *Cart) Remove(productID kernel.UUID) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.lines = slices.Delete(c.lines, i, i+1)
}

// RemoveAll drops the whole line of a product.
func (c *Cart) RemoveAll(productID kernel.UUID) {
	if i := c.index(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// Total is Σ quantity x unit price over all lines.
func (c *Cart) Total() (kernel.Money, error) {
	total := kernel.Zero()
	for _, l := range c.lines {
		line, err := l.UnitPrice.Mul(l.Quantity)
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(line); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) index(productID kernel.UUID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.ProductID.IsEqual(productID) })
}
