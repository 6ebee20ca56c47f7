// Package table models the dining tables of a tenant. Each table carries the
// number printed on its QR code, unique within the tenant.
package table

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
)

const (
	MaxNumberLength = 20
	MinCapacity     = 1
	MaxCapacity     = 100
)

var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table belongs to exactly one tenant. Inactive tables keep their history but
// accept no new orders.
type Table struct {
	id        kernel.UUID
	tenantID  kernel.UUID
	number    string
	capacity  int
	active    bool
	createdAt time.Time

	isConstructed bool
}

// NewTable creates an active table.
func NewTable(id, tenantID kernel.UUID, number string, capacity int, createdAt time.Time) (*Table, error) {
	return RestoreTable(id, tenantID, number, capacity, true, createdAt)
}

// RestoreTable rebuilds a table from storage.
func RestoreTable(
	id, tenantID kernel.UUID,
	number string,
	capacity int,
	active bool,
	createdAt time.Time,
) (*Table, error) {
	t := &Table{active: active, createdAt: createdAt.UTC(), isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setTenantID(tenantID),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID       { return t.id }
func (t *Table) TenantID() kernel.UUID { return t.tenantID }
func (t *Table) Number() string        { return t.number }
func (t *Table) Capacity() int         { return t.capacity }
func (t *Table) IsActive() bool        { return t.active }
func (t *Table) CreatedAt() time.Time  { return t.createdAt }

// BelongsTo reports whether the table is owned by tenantID.
func (t *Table) BelongsTo(tenantID kernel.UUID) bool {
	return t.tenantID.IsEqual(tenantID)
}

// Renumber changes the printed number. Uniqueness is checked by the repository.
func (t *Table) Renumber(number string) error {
	return t.setNumber(number)
}

func (t *Table) Resize(capacity int) error {
	return t.setCapacity(capacity)
}

func (t *Table) Activate()   { t.active = true }
func (t *Table) Deactivate() { t.active = false }

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setTenantID(tenantID kernel.UUID) error {
	if tenantID.IsZero() {
		return errs.NewValueIsRequiredError("tenantID")
	}
	t.tenantID = tenantID
	return nil
}

func (t *Table) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if n := utf8.RuneCountInString(number); n > MaxNumberLength {
		return errs.NewValueIsOutOfRangeError("number length", n, 1, MaxNumberLength)
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, MinCapacity, MaxCapacity)
	}
	t.capacity = capacity
	return nil
}
