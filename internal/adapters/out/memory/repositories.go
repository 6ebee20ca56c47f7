package memory

import (
	"context"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/pkg/errs"
)

type tenantRepository struct{ uow *UnitOfWork }

func (r tenantRepository) Add(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, addTenant(tenantRecordOf(aggregate)))
}

func (r tenantRepository) Update(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, updateTenant(tenantRecordOf(aggregate)))
}

func (r tenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	st, err := r.uow.read(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := st.tenants[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tenant", id)
	}
	return rec.toDomain()
}

func (r tenantRepository) ListSlugs(ctx context.Context) ([]string, error) {
	st, err := r.uow.read(ctx)
	if err != nil {
		return nil, err
	}
	return sortedSlugs(st), nil
}

type tableRepository struct{ uow *UnitOfWork }

func (r tableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, addTable(tableRecordOf(aggregate)))
}

func (r tableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, updateTable(tableRecordOf(aggregate)))
}

func (r tableRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error) {
	st, err := r.uow.read(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := st.tables[id]
	if !ok || rec.tenantID != tenantID {
		return nil, errs.NewObjectNotFoundError("table", id)
	}
	return rec.toDomain()
}

func (r tableRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	return r.uow.record(ctx, deleteTable(tenantID, id))
}

type orderRepository struct{ uow *UnitOfWork }

func (r orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, addOrder(orderRecordOf(aggregate)))
}

func (r orderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	st, err := r.uow.read(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := st.orders[id]
	if !ok || rec.tenantID != tenantID {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return rec.toDomain()
}

// UpdateStatus stores the order's status only if the stored status still equals
// expected at commit time, otherwise the commit fails with StaleStateError.
func (r orderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, changeOrderStatus(aggregate.TenantID(), aggregate.ID(),
		expected, aggregate.Status(), aggregate.UpdatedAt()))
}

func (r orderRepository) CountActiveByTable(ctx context.Context, tenantID, tableID kernel.UUID) (int64, error) {
	st, err := r.uow.read(ctx)
	if err != nil {
		return 0, err
	}
	return st.activeOrdersAt(tenantID, tableID), nil
}

type productRepository struct{ uow *UnitOfWork }

func (r productRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, putProduct(productRecordOf(product), false))
}

func (r productRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return r.uow.record(ctx, putProduct(productRecordOf(product), true))
}
