package cmd

import (
	"context"
	"fmt"

	httpadapter "siparisqr/internal/adapters/in/http"
	"siparisqr/internal/adapters/out/memory"
	"siparisqr/internal/adapters/out/notify"
	"siparisqr/internal/adapters/out/postgres"
	"siparisqr/internal/adapters/out/postgres/orderrepo"
	"siparisqr/internal/adapters/out/postgres/productrepo"
	"siparisqr/internal/adapters/out/postgres/tablerepo"
	"siparisqr/internal/adapters/out/postgres/tenantrepo"
	"siparisqr/internal/adapters/out/redis/tenantcache"
	"siparisqr/internal/core/application/usecases/commands"
	"siparisqr/internal/core/application/usecases/queries"
	"siparisqr/internal/core/domain/services"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/jobs"
	"siparisqr/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases for one storage driver.
type CompositionRoot struct {
	cfg    Config
	logger *zap.Logger

	uowFactory  ports.UnitOfWorkFactory
	orders      ports.OrderReader
	tables      ports.TableReader
	slugs       ports.SlugReader
	lookup      ports.TenantLookup
	catalog     ports.ProductCatalog
	menu        ports.MenuReader
	invalidator ports.TenantCacheInvalidator
}

// NewCompositionRoot builds the root for cfg.StorageDriver. gormDB is required for
// the postgres driver; rdb is optional and enables the tenant lookup cache.
func NewCompositionRoot(cfg Config, logger *zap.Logger, gormDB *gorm.DB, rdb redis.UniversalClient) (*CompositionRoot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CompositionRoot{cfg: cfg, logger: logger}

	switch cfg.StorageDriver {
	case StorageDriverMemory:
		store := memory.NewStore()
		c.uowFactory = store
		c.orders = store
		c.tables = store
		c.slugs = store
		c.lookup = store
		c.catalog = store
		c.menu = store
		c.invalidator = noopInvalidator{}
		return c, nil

	case StorageDriverPostgres:
		if gormDB == nil {
			return nil, errs.NewValueIsRequiredError("gormDB")
		}
		tenants := tenantrepo.NewGormTenantReader(gormDB)
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.orders = orderrepo.NewGormOrderReader(gormDB)
		c.tables = tablerepo.NewGormTableReader(gormDB)
		c.slugs = tenants
		c.lookup = tenants
		products := productrepo.NewGormProductCatalog(gormDB)
		c.catalog = products
		c.menu = products
		c.invalidator = noopInvalidator{}

		if rdb != nil {
			cache, err := tenantcache.New(rdb, tenants, cfg.TenantCacheTTL, logger.With(zap.String("component", "tenant_cache")))
			if err != nil {
				return nil, fmt.Errorf("tenant cache: %w", err)
			}
			c.lookup = cache
			c.invalidator = cache
		}
		return c, nil

	default:
		return nil, errs.NewValueIsInvalidError("storageDriver")
	}
}

func (c *CompositionRoot) CreateRegisterTenantCommandHandler() commands.RegisterTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivateTenantCommandHandler() commands.DeactivateTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateTenantCommandHandler(f, c.invalidator)
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTableCommandHandler() commands.UpdateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTableCommandHandler() commands.DeleteTableCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTableCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedDemoCommandHandler() commands.SeedDemoCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedDemoCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateOrderSnapshotQueryHandler() (queries.OrderSnapshotQueryHandler, error) {
	return queries.NewOrderSnapshotQueryHandler(c.CreateListOrdersQueryHandler(), c.cfg.SnapshotPollInterval)
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.menu, c.tables)
}

// CreateHTTPHandlers collects every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() (httpadapter.Handlers, error) {
	snapshot, err := c.CreateOrderSnapshotQueryHandler()
	if err != nil {
		return httpadapter.Handlers{}, err
	}

	return httpadapter.Handlers{
		RegisterTenant:    c.CreateRegisterTenantCommandHandler(),
		DeactivateTenant:  c.CreateDeactivateTenantCommandHandler(),
		CreateTable:       c.CreateCreateTableCommandHandler(),
		UpdateTable:       c.CreateUpdateTableCommandHandler(),
		DeleteTable:       c.CreateDeleteTableCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CheckSlug:         queries.NewCheckSlugQueryHandler(c.slugs),
		SuggestSlug:       queries.NewSuggestSlugQueryHandler(c.slugs),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          queries.NewGetOrderQueryHandler(c.orders),
		OrderSnapshot:     snapshot,
		ListTables:        queries.NewListTablesQueryHandler(c.tables),
		ListMenu:          c.CreateListMenuQueryHandler(),
		GetDashboardStats: queries.NewGetDashboardStatsQueryHandler(c.orders, c.tables),
	}, nil
}

func (c *CompositionRoot) CreateTenantRouter() (*services.TenantRouter, error) {
	return services.NewTenantRouter(services.RouterConfig{
		RootDomain:    c.cfg.RootDomain,
		Aliases:       c.cfg.RootAliases,
		PortalLabel:   c.cfg.PortalLabel,
		AdminLabels:   c.cfg.AdminLabels,
		LookupTimeout: c.cfg.TenantLookupTimeout,
	}, c.lookup)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		jobs.Config{
			StaleOrderAfter:    c.cfg.StaleOrderAfter,
			StaleOrderSchedule: c.cfg.StaleOrderSchedule,
		},
		c.CreateGetStaleOrdersQueryHandler(),
		notify.NewLogStaleOrderNotifier(c.logger.With(zap.String("component", "stale_order_notifier"))),
		c.logger.With(zap.String("component", "jobs")),
	)
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}

// noopInvalidator is used when tenant lookups are not cached.
type noopInvalidator struct{}

func (noopInvalidator) Evict(context.Context, string) error { return nil }
