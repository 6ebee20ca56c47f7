package queries

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"
)

// Menu is what a guest can order, with the table they are sitting at when known.
type Menu struct {
	Table    *table.Table
	Products []*catalog.Product
}

type ListMenuQueryHandler struct {
	products ports.MenuReader
	tables   ports.TableReader
}

func NewListMenuQueryHandler(products ports.MenuReader, tables ports.TableReader) ListMenuQueryHandler {
	return ListMenuQueryHandler{products: products, tables: tables}
}

// Handle returns the available products of the tenant ordered by name. When the
// query names a table, an unknown or inactive table yields ObjectNotFoundError.
func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) (Menu, error) {
	if err := query.Validate(); err != nil {
		return Menu{}, err
	}

	var menu Menu
	if query.TableNumber() != "" {
		t, err := h.findTable(ctx, query)
		if err != nil {
			return Menu{}, err
		}
		menu.Table = t
	}

	products, err := h.products.ListAvailableProducts(ctx, query.TenantID())
	if err != nil {
		return Menu{}, err
	}
	menu.Products = make([]*catalog.Product, 0, len(products))
	for _, p := range products {
		if p.IsAvailable() && p.BelongsTo(query.TenantID()) {
			menu.Products = append(menu.Products, p)
		}
	}
	slices.SortStableFunc(menu.Products, func(a, b *catalog.Product) int {
		return cmp.Or(strings.Compare(a.Name(), b.Name()), strings.Compare(a.ID().String(), b.ID().String()))
	})
	return menu, nil
}

func (h ListMenuQueryHandler) findTable(ctx context.Context, query ListMenuQuery) (*table.Table, error) {
	tables, err := h.tables.ListTables(ctx, query.TenantID())
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		if t.Number() == query.TableNumber() && t.IsActive() && t.BelongsTo(query.TenantID()) {
			return t, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("table", query.TableNumber())
}
