package memory_test

import (
	"testing"

	"siparisqr/internal/adapters/out/memory"
	"siparisqr/internal/core/application/usecases/queries"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMenu(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	acme := seedTenant(t, store, "acme")
	other := seedTenant(t, store, "other")
	tbl := seedTable(t, store, acme.ID(), "5")
	seedProduct(t, store, acme.ID(), "Su", 5)
	seedProduct(t, store, acme.ID(), "Americano", 25)
	seedProduct(t, store, other.ID(), "Baklava", 60)
	latte := seedProduct(t, store, acme.ID(), "Latte", 30)
	latte.SetAvailable(false)
	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ProductRepository().Update(ctx, latte))
	require.NoError(t, uow.Commit(ctx))

	h := queries.NewListMenuQueryHandler(store, store)

	t.Run("without table", func(t *testing.T) {
		q, err := queries.NewListMenuQuery(acme.ID(), "")
		require.NoError(t, err)

		menu, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.Nil(t, menu.Table)
		names := make([]string, 0, len(menu.Products))
		for _, p := range menu.Products {
			names = append(names, p.Name())
		}
		assert.Equal(t, []string{"Americano", "Su"}, names)
	})

	t.Run("with table", func(t *testing.T) {
		q, err := queries.NewListMenuQuery(acme.ID(), "5")
		require.NoError(t, err)

		menu, err := h.Handle(ctx, q)

		require.NoError(t, err)
		require.NotNil(t, menu.Table)
		assert.True(t, menu.Table.ID().IsEqual(tbl.ID()))
		assert.Len(t, menu.Products, 2)
	})

	t.Run("table of another tenant", func(t *testing.T) {
		q, err := queries.NewListMenuQuery(other.ID(), "5")
		require.NoError(t, err)

		_, err = h.Handle(ctx, q)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("empty menu", func(t *testing.T) {
		empty := seedTenant(t, store, "empty")
		q, err := queries.NewListMenuQuery(empty.ID(), "")
		require.NoError(t, err)

		menu, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.NotNil(t, menu.Products)
		assert.Empty(t, menu.Products)
	})
}
