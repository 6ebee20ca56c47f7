package queries

import (
	"errors"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(tenantID, orderID kernel.UUID) (GetOrderQuery, error) {
	var errList []error
	if tenantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tenantID"))
	}
	if orderID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("orderID"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{tenantID: tenantID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) TenantID() kernel.UUID { return q.tenantID }
func (q GetOrderQuery) OrderID() kernel.UUID  { return q.orderID }
