package commands_test

import (
	"context"

	"siparisqr/internal/core/application/usecases/commands"
	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTenantRepository struct{ mock.Mock }

func (m *MockTenantRepository) Add(ctx context.Context, t *tenant.Tenant) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*tenant.Tenant)
	return t, args.Error(1)
}

func (m *MockTenantRepository) ListSlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	slugs, _ := args.Get(0).([]string)
	return slugs, args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t *table.Table) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, t *table.Table) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, tenantID, id)
	t, _ := args.Get(0).(*table.Table)
	return t, args.Error(1)
}

func (m *MockTableRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) CountActiveByTable(ctx context.Context, tenantID, tableID kernel.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, tableID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) TenantRepository() ports.TenantRepository {
	return m.Called().Get(0).(ports.TenantRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	return m.Called().Get(0).(ports.TableRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

type MockTenantUoWFactory struct{ mock.Mock }

func (m *MockTenantUoWFactory) Create() commands.TenantUoW {
	return m.Called().Get(0).(commands.TenantUoW)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	return m.Called().Get(0).(commands.TableUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockSeedUoWFactory struct{ mock.Mock }

func (m *MockSeedUoWFactory) Create() commands.SeedUoW {
	return m.Called().Get(0).(commands.SeedUoW)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetProduct(ctx context.Context, tenantID, productID kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, productID)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

type MockInvalidator struct{ mock.Mock }

func (m *MockInvalidator) Evict(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}
