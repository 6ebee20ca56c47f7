package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"siparisqr/internal/adapters/out/postgres"
	"siparisqr/internal/adapters/out/postgres/orderrepo"
	"siparisqr/internal/adapters/out/postgres/pgtest"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite runs the order repository and reader
// against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	reader     *orderrepo.GormOrderReader
	tenantID   kernel.UUID
	tableID    kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.Require().NoError(postgres.Migrate(pg.DB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("order_items", "orders"))

	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB)
	suite.reader = orderrepo.NewGormOrderReader(suite.pg.DB)
	suite.tenantID = kernel.NewUUID()
	suite.tableID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_KeepsItemsInOrder() {
	ctx := context.Background()
	o := suite.newOrder(suite.tenantID, time.Now(), "Americano", "Su", "Tost")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	suite.Equal(order.Pending, got.Status())
	suite.True(o.Total().IsEqual(got.Total()))
	suite.Equal("Masa 3", got.CustomerName())

	names := make([]string, 0, len(got.Items()))
	for _, item := range got.Items() {
		names = append(names, item.ProductName())
	}
	suite.Equal([]string{"Americano", "Su", "Tost"}, names)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_OtherTenant_NotFound() {
	ctx := context.Background()
	o := suite.newOrder(suite.tenantID, time.Now(), "Americano")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := suite.repository.Get(ctx, kernel.NewUUID(), o.ID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_CompareAndSet() {
	ctx := context.Background()
	o := suite.newOrder(suite.tenantID, time.Now(), "Americano")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ChangeStatus(order.Preparing, time.Now()))
	suite.Require().NoError(second.ChangeStatus(order.Cancelled, time.Now()))

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, first, order.Pending))
	err = suite.repository.UpdateStatus(ctx, second, order.Pending)
	suite.Require().ErrorIs(err, errs.ErrStaleState)

	stored, err := suite.repository.Get(ctx, suite.tenantID, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, stored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountActiveByTable() {
	ctx := context.Background()
	now := time.Now()
	suite.addWithStatus(suite.newOrder(suite.tenantID, now, "Su"), order.Pending)
	suite.addWithStatus(suite.newOrder(suite.tenantID, now, "Su"), order.Ready)
	suite.addWithStatus(suite.newOrder(suite.tenantID, now, "Su"), order.Completed)
	suite.addWithStatus(suite.newOrder(suite.tenantID, now, "Su"), order.Cancelled)

	n, err := suite.repository.CountActiveByTable(ctx, suite.tenantID, suite.tableID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), n)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListOrders_KitchenOrderAndFilter() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	older := suite.newOrder(suite.tenantID, base, "Su")
	newer := suite.newOrder(suite.tenantID, base.Add(time.Minute), "Su")
	ready := suite.newOrder(suite.tenantID, base.Add(-time.Minute), "Su")
	done := suite.newOrder(suite.tenantID, base, "Su")
	suite.addWithStatus(newer, order.Pending)
	suite.addWithStatus(older, order.Pending)
	suite.addWithStatus(ready, order.Ready)
	suite.addWithStatus(done, order.Completed)
	suite.addWithStatus(suite.newOrder(kernel.NewUUID(), base, "Su"), order.Pending)

	all, err := suite.reader.ListOrders(ctx, suite.tenantID, nil)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{older.ID(), newer.ID(), ready.ID(), done.ID()}, ids(all))

	active, err := suite.reader.ListOrders(ctx, suite.tenantID, order.ActiveStatuses())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{older.ID(), newer.ID(), ready.ID()}, ids(active))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListOrdersCreatedBefore_AcrossTenants() {
	ctx := context.Background()
	now := time.Now()
	stale := suite.newOrder(suite.tenantID, now.Add(-30*time.Minute), "Su")
	otherStale := suite.newOrder(kernel.NewUUID(), now.Add(-20*time.Minute), "Su")
	fresh := suite.newOrder(suite.tenantID, now, "Su")
	preparing := suite.newOrder(suite.tenantID, now.Add(-time.Hour), "Su")
	suite.addWithStatus(stale, order.Pending)
	suite.addWithStatus(otherStale, order.Pending)
	suite.addWithStatus(fresh, order.Pending)
	suite.addWithStatus(preparing, order.Preparing)

	got, err := suite.reader.ListOrdersCreatedBefore(ctx, order.Pending, now.Add(-10*time.Minute))

	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{stale.ID(), otherStale.ID()}, ids(got))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStats() {
	ctx := context.Background()
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	suite.addWithStatus(suite.newOrder(suite.tenantID, from.Add(time.Hour), "Americano"), order.Completed)
	suite.addWithStatus(suite.newOrder(suite.tenantID, from.Add(2*time.Hour), "Americano"), order.Cancelled)
	suite.addWithStatus(suite.newOrder(suite.tenantID, from.Add(3*time.Hour), "Americano"), order.Preparing)
	suite.addWithStatus(suite.newOrder(suite.tenantID, from.AddDate(0, -1, 0), "Americano"), order.Pending)
	suite.addWithStatus(suite.newOrder(suite.tenantID, to.Add(time.Hour), "Americano"), order.Completed)

	stats, err := suite.reader.Stats(ctx, suite.tenantID, from, to)

	suite.Require().NoError(err)
	suite.Equal(int64(3), stats.Created)
	suite.Equal("25.00", stats.Revenue.String())
	suite.Equal(int64(2), stats.Active)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStats_NoOrders() {
	stats, err := suite.reader.Stats(context.Background(), suite.tenantID, time.Now().Add(-time.Hour), time.Now())

	suite.Require().NoError(err)
	suite.Zero(stats.Created)
	suite.True(stats.Revenue.IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(tenantID kernel.UUID, createdAt time.Time, names ...string) *order.Order {
	price, err := kernel.MoneyFromMajor(25)
	suite.Require().NoError(err)

	items := make([]order.Item, 0, len(names))
	for _, name := range names {
		item, err := order.NewItem(kernel.NewUUID(), name, 1, price)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), tenantID, suite.tableID, items, "Masa 3", "", createdAt)
	suite.Require().NoError(err)
	return o
}

// addWithStatus stores o and walks it forward to status. Cancelled is reached
// straight from PENDING.
func (suite *OrderRepositoryIntegrationTestSuite) addWithStatus(o *order.Order, status order.Status) {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	for o.Status() != status {
		prev := o.Status()
		next := order.Cancelled
		if status != order.Cancelled {
			var ok bool
			next, ok = prev.Next()
			suite.Require().True(ok)
		}
		suite.Require().NoError(o.ChangeStatus(next, o.CreatedAt()))
		suite.Require().NoError(suite.repository.UpdateStatus(ctx, o, prev))
	}
}

func ids(orders []*order.Order) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID())
	}
	return out
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
