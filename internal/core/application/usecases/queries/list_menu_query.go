package queries

import (
	"errors"
	"strings"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrListMenuQueryIsNotConstructed = errors.New(
	"ListMenuQuery must be created via NewListMenuQuery constructor",
)

// ListMenuQuery asks for the menu a guest sees after scanning a table's QR code.
// The table number is optional.
type ListMenuQuery struct {
	tenantID    kernel.UUID
	tableNumber string

	guard guard.ConstructorGuard
}

func NewListMenuQuery(tenantID kernel.UUID, tableNumber string) (ListMenuQuery, error) {
	if tenantID.IsZero() {
		return ListMenuQuery{}, errs.NewValueIsRequiredError("tenantID")
	}
	return ListMenuQuery{
		tenantID:    tenantID,
		tableNumber: strings.TrimSpace(tableNumber),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

func (q ListMenuQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// TableNumber is empty when the menu is requested without a table.
func (q ListMenuQuery) TableNumber() string {
	return q.tableNumber
}
