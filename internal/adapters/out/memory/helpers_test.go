package memory_test

import (
	"context"
	"testing"
	"time"

	"siparisqr/internal/adapters/out/memory"
	"siparisqr/internal/core/application/usecases/commands"
	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"

	"github.com/stretchr/testify/require"
)

type (
	tenantUoWFactory struct{ store *memory.Store }
	tableUoWFactory  struct{ store *memory.Store }
	orderUoWFactory  struct{ store *memory.Store }
	seedUoWFactory   struct{ store *memory.Store }
)

func (f tenantUoWFactory) Create() commands.TenantUoW { return f.store.Create() }
func (f tableUoWFactory) Create() commands.TableUoW   { return f.store.Create() }
func (f orderUoWFactory) Create() commands.OrderUoW   { return f.store.Create() }
func (f seedUoWFactory) Create() commands.SeedUoW     { return f.store.Create() }

func inTx(t *testing.T, store *memory.Store, fn func(ctx context.Context, uow ports.UnitOfWork) error) {
	t.Helper()
	ctx := t.Context()
	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	require.NoError(t, fn(ctx, uow))
	require.NoError(t, uow.Commit(ctx))
}

func seedTenant(t *testing.T, store *memory.Store, slug string) *tenant.Tenant {
	t.Helper()
	s, err := tenant.NewSlug(slug)
	require.NoError(t, err)
	tn, err := tenant.NewTenant(kernel.NewUUID(), s, slug, time.Now())
	require.NoError(t, err)
	inTx(t, store, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.TenantRepository().Add(ctx, tn)
	})
	return tn
}

func seedTable(t *testing.T, store *memory.Store, tenantID kernel.UUID, number string) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(kernel.NewUUID(), tenantID, number, 4, time.Now())
	require.NoError(t, err)
	inTx(t, store, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.TableRepository().Add(ctx, tbl)
	})
	return tbl
}

func seedProduct(t *testing.T, store *memory.Store, tenantID kernel.UUID, name string, major int64) *catalog.Product {
	t.Helper()
	price, err := kernel.MoneyFromMajor(major)
	require.NoError(t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), tenantID, name, price, true)
	require.NoError(t, err)
	inTx(t, store, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.ProductRepository().Add(ctx, p)
	})
	return p
}
