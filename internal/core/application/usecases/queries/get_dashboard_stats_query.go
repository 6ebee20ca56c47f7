package queries

import (
	"errors"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"
	"siparisqr/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery reports the back-office figures of a tenant for the
// calendar month containing now, in now's location.
type GetDashboardStatsQuery struct {
	tenantID kernel.UUID
	now      time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(tenantID kernel.UUID, now time.Time) (GetDashboardStatsQuery, error) {
	var errList []error
	if tenantID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("tenantID"))
	}
	if now.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("now"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetDashboardStatsQuery{}, err
	}
	return GetDashboardStatsQuery{tenantID: tenantID, now: now, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

func (q GetDashboardStatsQuery) TenantID() kernel.UUID { return q.tenantID }
func (q GetDashboardStatsQuery) Now() time.Time        { return q.now }

// MonthBounds returns [first day of the month, first day of the next month).
func (q GetDashboardStatsQuery) MonthBounds() (time.Time, time.Time) {
	y, m, _ := q.now.Date()
	from := time.Date(y, m, 1, 0, 0, 0, 0, q.now.Location())
	return from, from.AddDate(0, 1, 0)
}

type DashboardStats struct {
	OrdersThisMonth  int64
	RevenueThisMonth kernel.Money
	ActiveOrders     int64
	Tables           int64
	From             time.Time
	To               time.Time
}
