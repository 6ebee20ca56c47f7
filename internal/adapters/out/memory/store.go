// Package memory keeps tenants, tables, products and orders in process memory.
// It backs STORAGE_DRIVER=memory and the database-free tests.
//
// The published state is an immutable snapshot behind an atomic pointer.
// Readers load it without locking. A unit of work collects writes together
// with their preconditions; Commit replays them under a short mutex on a copy
// of the latest snapshot and publishes the copy, or publishes nothing when a
// precondition no longer holds.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"
)

var (
	_ ports.UnitOfWorkFactory = (*Store)(nil)
	_ ports.OrderReader       = (*Store)(nil)
	_ ports.TableReader       = (*Store)(nil)
	_ ports.SlugReader        = (*Store)(nil)
	_ ports.TenantLookup      = (*Store)(nil)
	_ ports.ProductCatalog    = (*Store)(nil)
	_ ports.MenuReader        = (*Store)(nil)
)

type Store struct {
	commitMu sync.Mutex
	current  atomic.Pointer[state]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(newState())
	return s
}

// Create returns a new unit of work bound to the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

func (s *Store) snapshot() *state {
	return s.current.Load()
}

func (s *Store) publish(ops []op) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	next := s.snapshot().clone()
	for _, apply := range ops {
		if err := apply(next); err != nil {
			return err
		}
	}
	s.current.Store(next)
	return nil
}

func (s *Store) ListOrders(ctx context.Context, tenantID kernel.UUID, statuses []order.Status) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)
	for _, rec := range s.snapshot().orders {
		if rec.tenantID != tenantID {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, rec.status) {
			continue
		}
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	order.SortForKitchen(orders)
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := s.snapshot().orders[id]
	if !ok || rec.tenantID != tenantID {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return rec.toDomain()
}

func (s *Store) ListOrdersCreatedBefore(ctx context.Context, status order.Status, before time.Time) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)
	for _, rec := range s.snapshot().orders {
		if rec.status != status || !rec.createdAt.Before(before) {
			continue
		}
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), strings.Compare(a.ID().String(), b.ID().String()))
	})
	return orders, nil
}

func (s *Store) Stats(ctx context.Context, tenantID kernel.UUID, from, to time.Time) (ports.OrderStats, error) {
	if err := ctx.Err(); err != nil {
		return ports.OrderStats{}, err
	}

	stats := ports.OrderStats{Revenue: kernel.Zero()}
	for _, rec := range s.snapshot().orders {
		if rec.tenantID != tenantID {
			continue
		}
		if !rec.status.IsTerminal() {
			stats.Active++
		}
		if rec.createdAt.Before(from) || !rec.createdAt.Before(to) {
			continue
		}
		stats.Created++
		if rec.status == order.Completed {
			revenue, err := stats.Revenue.Add(rec.total)
			if err != nil {
				return ports.OrderStats{}, err
			}
			stats.Revenue = revenue
		}
	}
	return stats, nil
}

func (s *Store) ListTables(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables := make([]*table.Table, 0)
	for _, rec := range s.snapshot().tables {
		if rec.tenantID != tenantID {
			continue
		}
		t, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	slices.SortFunc(tables, func(a, b *table.Table) int {
		return strings.Compare(a.Number(), b.Number())
	})
	return tables, nil
}

func (s *Store) CountTables(ctx context.Context, tenantID kernel.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int64
	for _, rec := range s.snapshot().tables {
		if rec.tenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (s *Store) ListSlugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sortedSlugs(s.snapshot()), nil
}

func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := s.snapshot().slugs[slug]
	return ok, nil
}

func (s *Store) FindTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := s.snapshot()
	id, ok := st.slugs[slug]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tenant", slug)
	}
	return st.tenants[id].toDomain()
}

func (s *Store) GetProduct(ctx context.Context, tenantID, productID kernel.UUID) (*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := s.snapshot().products[productID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", productID)
	}
	if rec.tenantID != tenantID {
		return nil, errs.NewForbiddenError("product " + productID.String() + " belongs to another tenant")
	}
	return rec.toDomain()
}

func (s *Store) ListAvailableProducts(ctx context.Context, tenantID kernel.UUID) ([]*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0)
	for _, rec := range s.snapshot().products {
		if rec.tenantID != tenantID || !rec.available {
			continue
		}
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	slices.SortFunc(products, func(a, b *catalog.Product) int {
		return cmp.Or(strings.Compare(a.Name(), b.Name()), strings.Compare(a.ID().String(), b.ID().String()))
	})
	return products, nil
}

func sortedSlugs(st *state) []string {
	slugs := make([]string, 0, len(st.slugs))
	for slug := range st.slugs {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)
	return slugs
}
