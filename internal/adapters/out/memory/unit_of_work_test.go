package memory_test

import (
	"context"
	"testing"
	"time"

	"siparisqr/internal/adapters/out/memory"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTenant(t *testing.T, slug string) *tenant.Tenant {
	t.Helper()
	s, err := tenant.NewSlug(slug)
	require.NoError(t, err)
	tn, err := tenant.NewTenant(kernel.NewUUID(), s, slug, time.Now())
	require.NoError(t, err)
	return tn
}

func TestUnitOfWork_CommitPublishesAllWrites(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	tn := newTenant(t, "acme")
	tbl, err := table.NewTable(kernel.NewUUID(), tn.ID(), "1", 2, time.Now())
	require.NoError(t, err)

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.TenantRepository().Add(ctx, tn))
	require.NoError(t, uow.TableRepository().Add(ctx, tbl))

	got, err := uow.TableRepository().Get(ctx, tn.ID(), tbl.ID())
	require.NoError(t, err)
	assert.Equal(t, "1", got.Number())

	exists, err := store.SlugExists(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, exists, "uncommitted writes must not be visible to readers")

	require.NoError(t, uow.Commit(ctx))

	exists, err = store.SlugExists(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, exists)
	n, err := store.CountTables(ctx, tn.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUnitOfWork_FailedCommitPublishesNothing(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	first := newTenant(t, "acme")
	second := newTenant(t, "acme")
	tbl, err := table.NewTable(kernel.NewUUID(), second.ID(), "1", 2, time.Now())
	require.NoError(t, err)

	loser := store.Create()
	require.NoError(t, loser.Begin(ctx))
	require.NoError(t, loser.TenantRepository().Add(ctx, second))
	require.NoError(t, loser.TableRepository().Add(ctx, tbl))

	winner := store.Create()
	require.NoError(t, winner.Begin(ctx))
	require.NoError(t, winner.TenantRepository().Add(ctx, first))
	require.NoError(t, winner.Commit(ctx))

	err = loser.Commit(ctx)
	require.ErrorIs(t, err, errs.ErrObjectConflict)

	found, err := store.FindTenantBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, found.ID().IsEqual(first.ID()))
	n, err := store.CountTables(ctx, second.ID())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUnitOfWork_EagerConflict(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	seedTenant(t, store, "acme")

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	err := uow.TenantRepository().Add(ctx, newTenant(t, "acme"))

	assert.ErrorIs(t, err, errs.ErrObjectConflict)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.TenantRepository().Add(ctx, newTenant(t, "acme")))
	require.NoError(t, uow.Rollback(ctx))
	require.NoError(t, uow.Rollback(ctx))

	slugs, err := store.ListSlugs(ctx)
	require.NoError(t, err)
	assert.Empty(t, slugs)
	assert.ErrorIs(t, uow.Commit(ctx), memory.ErrTransactionNotStarted)
}

func TestUnitOfWork_CancelledContextAbortsCommit(t *testing.T) {
	store := memory.NewStore()
	ctx, cancel := context.WithCancel(t.Context())

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.TenantRepository().Add(ctx, newTenant(t, "acme")))
	cancel()

	require.ErrorIs(t, uow.Commit(ctx), context.Canceled)
	exists, err := store.SlugExists(t.Context(), "acme")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUnitOfWork_WriteWithoutBegin(t *testing.T) {
	uow := memory.NewStore().Create()

	err := uow.TenantRepository().Add(t.Context(), newTenant(t, "acme"))

	assert.ErrorIs(t, err, memory.ErrTransactionNotStarted)
}

func TestUnitOfWork_UpdateKeepsSlug(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	tn := seedTenant(t, store, "acme")
	tn.Deactivate()

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.TenantRepository().Update(ctx, tn))
	require.NoError(t, uow.Commit(ctx))

	found, err := store.FindTenantBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, found.IsActive())
}

func TestStore_GetProduct(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	acme := seedTenant(t, store, "acme")
	other := seedTenant(t, store, "other")
	p := seedProduct(t, store, acme.ID(), "Americano", 25)

	got, err := store.GetProduct(ctx, acme.ID(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, "25.00", got.Price().String())

	_, err = store.GetProduct(ctx, other.ID(), p.ID())
	assert.ErrorIs(t, err, errs.ErrForbidden)

	_, err = store.GetProduct(ctx, acme.ID(), kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_FindTenantBySlug_NotFound(t *testing.T) {
	_, err := memory.NewStore().FindTenantBySlug(t.Context(), "nobody")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
