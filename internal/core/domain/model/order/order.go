package order

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
)

const (
	MaxItems              = 50
	MaxNotesLength        = 500
	MaxCustomerNameLength = 100
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering flow. It is placed from a table,
// worked on by the kitchen and closed from the back office, all of which may
// change its status concurrently.
//
// Order follows these invariants:
//   - Belongs to exactly one tenant and one table of that tenant
//   - Has between 1 and MaxItems items
//   - total equals the sum of quantity x unit price snapshot and never changes
//   - Status only moves along Status.Transition; terminal orders never change
//
// Orders are never deleted.
type Order struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	tableID      kernel.UUID
	items        []Item
	status       Status
	total        kernel.Money
	customerName string
	notes        string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder places a PENDING order and freezes its total.
//
// Parameters:
//   - id, tenantID, tableID: valid identifiers; ownership of the table is checked by the caller
//   - items: 1..MaxItems lines with price snapshots
//   - customerName, notes: optional free text
//   - createdAt: placement time, also used as the first updatedAt
//
// Example:
//
//	item, _ := order.NewItem(productID, "Americano", 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), tenantID, tableID, []order.Item{item}, "", "", time.Now())
func NewOrder(
	id, tenantID, tableID kernel.UUID,
	items []Item,
	customerName, notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		updatedAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, tenantID, tableID),
		o.setItems(items),
		o.setCustomerName(customerName),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	total, err := sumItems(o.items)
	if err != nil {
		return nil, err
	}
	o.total = total
	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total must equal the
// sum of the stored items; a mismatch means the record was corrupted.
func RestoreOrder(
	id, tenantID, tableID kernel.UUID,
	items []Item,
	status Status,
	total kernel.Money,
	customerName, notes string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, tenantID, tableID),
		o.setItems(items),
		status.Validate(),
		o.setCustomerName(customerName),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}
	o.status = status

	computed, err := sumItems(o.items)
	if err != nil {
		return nil, err
	}
	if !computed.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("stored %s differs from item sum %s", total, computed))
	}
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID       { return o.id }
func (o *Order) TenantID() kernel.UUID { return o.tenantID }
func (o *Order) TableID() kernel.UUID  { return o.tableID }
func (o *Order) Status() Status        { return o.status }
func (o *Order) Total() kernel.Money   { return o.total }
func (o *Order) CustomerName() string  { return o.customerName }
func (o *Order) Notes() string         { return o.notes }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }
func (o *Order) UpdatedAt() time.Time  { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// BelongsTo reports whether the order is owned by tenantID.
func (o *Order) BelongsTo(tenantID kernel.UUID) bool {
	return o.tenantID.IsEqual(tenantID)
}

// IsActive reports whether the order still waits on the kitchen or service.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// ChangeStatus moves the order to target.
//
// The transition is validated by Status.Transition. On failure the order is left
// unchanged and an InvalidTransitionError is returned. On success the status and
// updatedAt are set.
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	next, err := o.status.Transition(target)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = at.UTC()
	return nil
}

// CompareKitchenPriority orders a before b when its status has the lower priority,
// then by the earlier creation time. The order id breaks remaining ties so the
// result is total.
func CompareKitchenPriority(a, b *Order) int {
	return cmp.Or(
		cmp.Compare(a.status.Priority(), b.status.Priority()),
		a.createdAt.Compare(b.createdAt),
		strings.Compare(a.id.String(), b.id.String()),
	)
}

// SortForKitchen sorts orders in place by CompareKitchenPriority.
func SortForKitchen(orders []*Order) {
	slices.SortStableFunc(orders, CompareKitchenPriority)
}

func (o *Order) setIDs(id, tenantID, tableID kernel.UUID) error {
	var errList []error
	if err := id.Validate(); err != nil {
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
	o.id, o.tenantID, o.tableID = id, tenantID, tableID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), 1, MaxItems)
	}
	for i, item := range items {
		if item.productID.IsZero() || item.quantity < MinQuantity {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not created via NewItem", i))
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", n, 0, MaxCustomerNameLength)
	}
	o.customerName = name
	return nil
}

func (o *Order) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if n := utf8.RuneCountInString(notes); n > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, MaxNotesLength)
	}
	o.notes = notes
	return nil
}
