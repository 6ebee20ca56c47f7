package queries

import (
	"errors"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

// ListTablesQuery lists the live tables of a tenant ordered by number.
type ListTablesQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListTablesQuery(tenantID kernel.UUID) (ListTablesQuery, error) {
	if tenantID.IsZero() {
		return ListTablesQuery{}, errs.NewValueIsRequiredError("tenantID")
	}
	return ListTablesQuery{tenantID: tenantID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

func (q ListTablesQuery) TenantID() kernel.UUID {
	return q.tenantID
}
