package memory

import (
	"fmt"
	"maps"
	"time"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/pkg/errs"
)

// Records are plain copies of aggregates. A published state is never mutated;
// every reader rebuilds fresh aggregates from it.
type (
	tenantRecord struct {
		id        kernel.UUID
		slug      string
		name      string
		active    bool
		createdAt time.Time
	}

	tableRecord struct {
		id        kernel.UUID
		tenantID  kernel.UUID
		number    string
		capacity  int
		active    bool
		createdAt time.Time
	}

	productRecord struct {
		id        kernel.UUID
		tenantID  kernel.UUID
		name      string
		price     kernel.Money
		available bool
	}

	orderRecord struct {
		id           kernel.UUID
		tenantID     kernel.UUID
		tableID      kernel.UUID
		items        []order.Item
		status       order.Status
		total        kernel.Money
		customerName string
		notes        string
		createdAt    time.Time
		updatedAt    time.Time
	}
)

type state struct {
	tenants  map[kernel.UUID]tenantRecord
	slugs    map[string]kernel.UUID
	tables   map[kernel.UUID]tableRecord
	products map[kernel.UUID]productRecord
	orders   map[kernel.UUID]orderRecord
}

func newState() *state {
	return &state{
		tenants:  make(map[kernel.UUID]tenantRecord),
		slugs:    make(map[string]kernel.UUID),
		tables:   make(map[kernel.UUID]tableRecord),
		products: make(map[kernel.UUID]productRecord),
		orders:   make(map[kernel.UUID]orderRecord),
	}
}

func (s *state) clone() *state {
	return &state{
		tenants:  maps.Clone(s.tenants),
		slugs:    maps.Clone(s.slugs),
		tables:   maps.Clone(s.tables),
		products: maps.Clone(s.products),
		orders:   maps.Clone(s.orders),
	}
}

func (s *state) numberTaken(tenantID, tableID kernel.UUID, number string) bool {
	for _, rec := range s.tables {
		if rec.tenantID == tenantID && rec.number == number && rec.id != tableID {
			return true
		}
	}
	return false
}

func (s *state) activeOrdersAt(tenantID, tableID kernel.UUID) int64 {
	var n int64
	for _, rec := range s.orders {
		if rec.tenantID == tenantID && rec.tableID == tableID && !rec.status.IsTerminal() {
			n++
		}
	}
	return n
}

// op is a write together with its preconditions. It is run once against the
// unit of work's private view when issued and again against the latest state at
// commit, so a precondition broken by a concurrent commit fails the later one.
type op func(s *state) error

func addTenant(rec tenantRecord) op {
	return func(s *state) error {
		if _, ok := s.tenants[rec.id]; ok {
			return errs.NewObjectConflictError("tenant", rec.id)
		}
		if _, ok := s.slugs[rec.slug]; ok {
			return errs.NewObjectConflictError("slug", rec.slug)
		}
		s.tenants[rec.id] = rec
		s.slugs[rec.slug] = rec.id
		return nil
	}
}

func updateTenant(rec tenantRecord) op {
	return func(s *state) error {
		existing, ok := s.tenants[rec.id]
		if !ok {
			return errs.NewObjectNotFoundError("tenant", rec.id)
		}
		rec.slug = existing.slug
		s.tenants[rec.id] = rec
		return nil
	}
}

func addTable(rec tableRecord) op {
	return func(s *state) error {
		if _, ok := s.tables[rec.id]; ok {
			return errs.NewObjectConflictError("table", rec.id)
		}
		if s.numberTaken(rec.tenantID, rec.id, rec.number) {
			return errs.NewObjectConflictError("number", rec.number)
		}
		s.tables[rec.id] = rec
		return nil
	}
}

func updateTable(rec tableRecord) op {
	return func(s *state) error {
		existing, ok := s.tables[rec.id]
		if !ok || existing.tenantID != rec.tenantID {
			return errs.NewObjectNotFoundError("table", rec.id)
		}
		if s.numberTaken(rec.tenantID, rec.id, rec.number) {
			return errs.NewObjectConflictError("number", rec.number)
		}
		s.tables[rec.id] = rec
		return nil
	}
}

func deleteTable(tenantID, tableID kernel.UUID) op {
	return func(s *state) error {
		existing, ok := s.tables[tableID]
		if !ok || existing.tenantID != tenantID {
			return errs.NewObjectNotFoundError("table", tableID)
		}
		if n := s.activeOrdersAt(tenantID, tableID); n > 0 {
			return errs.NewObjectConflictErrorWithCause("table", existing.number,
				fmt.Errorf("%d active orders reference it", n))
		}
		delete(s.tables, tableID)
		return nil
	}
}

func addOrder(rec orderRecord) op {
	return func(s *state) error {
		if _, ok := s.orders[rec.id]; ok {
			return errs.NewObjectConflictError("order", rec.id)
		}
		tbl, ok := s.tables[rec.tableID]
		if !ok || tbl.tenantID != rec.tenantID || !tbl.active {
			return errs.NewObjectNotFoundError("table", rec.tableID)
		}
		s.orders[rec.id] = rec
		return nil
	}
}

func changeOrderStatus(tenantID, orderID kernel.UUID, expected, status order.Status, at time.Time) op {
	return func(s *state) error {
		rec, ok := s.orders[orderID]
		if !ok || rec.tenantID != tenantID {
			return errs.NewObjectNotFoundError("order", orderID)
		}
		if rec.status != expected {
			return errs.NewStaleStateError("order", orderID, expected)
		}
		rec.status = status
		rec.updatedAt = at
		s.orders[orderID] = rec
		return nil
	}
}

func putProduct(rec productRecord, mustExist bool) op {
	return func(s *state) error {
		existing, ok := s.products[rec.id]
		switch {
		case mustExist && (!ok || existing.tenantID != rec.tenantID):
			return errs.NewObjectNotFoundError("product", rec.id)
		case !mustExist && ok:
			return errs.NewObjectConflictError("product", rec.id)
		}
		s.products[rec.id] = rec
		return nil
	}
}

func tenantRecordOf(t *tenant.Tenant) tenantRecord {
	return tenantRecord{
		id:        t.ID(),
		slug:      t.Slug().String(),
		name:      t.DisplayName(),
		active:    t.IsActive(),
		createdAt: t.CreatedAt(),
	}
}

func (r tenantRecord) toDomain() (*tenant.Tenant, error) {
	slug, err := tenant.NewSlug(r.slug)
	if err != nil {
		return nil, err
	}
	return tenant.RestoreTenant(r.id, slug, r.name, r.active, r.createdAt)
}

func tableRecordOf(t *table.Table) tableRecord {
	return tableRecord{
		id:        t.ID(),
		tenantID:  t.TenantID(),
		number:    t.Number(),
		capacity:  t.Capacity(),
		active:    t.IsActive(),
		createdAt: t.CreatedAt(),
	}
}

func (r tableRecord) toDomain() (*table.Table, error) {
	return table.RestoreTable(r.id, r.tenantID, r.number, r.capacity, r.active, r.createdAt)
}

func productRecordOf(p *catalog.Product) productRecord {
	return productRecord{
		id:        p.ID(),
		tenantID:  p.TenantID(),
		name:      p.Name(),
		price:     p.Price(),
		available: p.IsAvailable(),
	}
}

func (r productRecord) toDomain() (*catalog.Product, error) {
	return catalog.NewProduct(r.id, r.tenantID, r.name, r.price, r.available)
}

func orderRecordOf(o *order.Order) orderRecord {
	return orderRecord{
		id:           o.ID(),
		tenantID:     o.TenantID(),
		tableID:      o.TableID(),
		items:        o.Items(),
		status:       o.Status(),
		total:        o.Total(),
		customerName: o.CustomerName(),
		notes:        o.Notes(),
		createdAt:    o.CreatedAt(),
		updatedAt:    o.UpdatedAt(),
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.tenantID, r.tableID, r.items, r.status, r.total,
		r.customerName, r.notes, r.createdAt, r.updatedAt)
}
