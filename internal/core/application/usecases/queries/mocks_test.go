package queries_test

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) ListOrders(ctx context.Context, tenantID kernel.UUID, statuses []order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) GetOrder(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) ListOrdersCreatedBefore(ctx context.Context, status order.Status, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, status, before)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) Stats(ctx context.Context, tenantID kernel.UUID, from, to time.Time) (ports.OrderStats, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).(ports.OrderStats), args.Error(1)
}

type MockTableReader struct{ mock.Mock }

func (m *MockTableReader) ListTables(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error) {
	args := m.Called(ctx, tenantID)
	tables, _ := args.Get(0).([]*table.Table)
	return tables, args.Error(1)
}

func (m *MockTableReader) CountTables(ctx context.Context, tenantID kernel.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSlugReader struct{ mock.Mock }

func (m *MockSlugReader) ListSlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	slugs, _ := args.Get(0).([]string)
	return slugs, args.Error(1)
}

func (m *MockSlugReader) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type MockMenuReader struct{ mock.Mock }

func (m *MockMenuReader) ListAvailableProducts(ctx context.Context, tenantID kernel.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, tenantID)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}
