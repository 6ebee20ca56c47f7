package commands

import (
	"context"
	"slices"
	"strconv"
	"time"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/core/domain/model/tenant"
)

const demoTableCount = 8

var demoMenu = []struct {
	name  string
	price int64
}{
	{"Izgara Köfte", 45},
	{"Tavuk Şiş", 38},
	{"Karışık Izgara", 65},
	{"Humus", 18},
	{"Çoban Salata", 22},
	{"Sigara Böreği", 25},
	{"Ayran", 8},
	{"Çay", 5},
	{"Kola", 12},
}

// SeedDemoResult reports what the seeding created. Created is false when the demo
// restaurant was already there.
type SeedDemoResult struct {
	Created  bool
	TenantID kernel.UUID
}

type SeedDemoCommandHandler struct {
	uowFactory SeedUoWFactory
	now        func() time.Time
}

func NewSeedDemoCommandHandler(uowFactory SeedUoWFactory) SeedDemoCommandHandler {
	return SeedDemoCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *SeedDemoCommandHandler) Handle(ctx context.Context, cmd SeedDemoCommand) (SeedDemoResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedDemoResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedDemoResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	slugs, err := uow.TenantRepository().ListSlugs(ctx)
	if err != nil {
		return SeedDemoResult{}, err
	}
	if slices.Contains(slugs, DemoSlug) {
		return SeedDemoResult{}, nil
	}

	now := h.now()
	slug, err := tenant.NewSlug(DemoSlug)
	if err != nil {
		return SeedDemoResult{}, err
	}
	t, err := tenant.NewTenant(kernel.NewUUID(), slug, "Demo Restaurant", now)
	if err != nil {
		return SeedDemoResult{}, err
	}
	if err = uow.TenantRepository().Add(ctx, t); err != nil {
		return SeedDemoResult{}, err
	}

	for _, entry := range demoMenu {
		price, err := kernel.MoneyFromMajor(entry.price)
		if err != nil {
			return SeedDemoResult{}, err
		}
		p, err := catalog.NewProduct(kernel.NewUUID(), t.ID(), entry.name, price, true)
		if err != nil {
			return SeedDemoResult{}, err
		}
		if err = uow.ProductRepository().Add(ctx, p); err != nil {
			return SeedDemoResult{}, err
		}
	}

	for n := 1; n <= demoTableCount; n++ {
		tbl, err := table.NewTable(kernel.NewUUID(), t.ID(), strconv.Itoa(n), 4, now)
		if err != nil {
			return SeedDemoResult{}, err
		}
		if err = uow.TableRepository().Add(ctx, tbl); err != nil {
			return SeedDemoResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SeedDemoResult{}, err
	}
	return SeedDemoResult{Created: true, TenantID: t.ID()}, nil
}
