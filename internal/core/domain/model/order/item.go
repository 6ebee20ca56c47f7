package order

import (
	"errors"
	"strings"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Item is one line of an order. The unit price is a snapshot taken from the
// catalog when the order was placed; later menu price edits do not touch it.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
}

// NewItem validates a line. Quantity must be in [MinQuantity, MaxQuantity].
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	var errList []error
	if err := productID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("productID", err))
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productName"))
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{productID: productID, productName: productName, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i Item) ProductID() kernel.UUID  { return i.productID }
func (i Item) ProductName() string     { return i.productName }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// LineTotal is quantity x unit price.
func (i Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.Mul(i.quantity)
}

// sumItems computes the order total from its lines.
func sumItems(items []Item) (kernel.Money, error) {
	total := kernel.Zero()
	for _, item := range items {
		line, err := item.LineTotal()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(line); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
