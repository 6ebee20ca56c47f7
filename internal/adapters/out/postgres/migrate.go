package postgres

import (
	"siparisqr/internal/adapters/out/postgres/orderrepo"
	"siparisqr/internal/adapters/out/postgres/productrepo"
	"siparisqr/internal/adapters/out/postgres/tablerepo"
	"siparisqr/internal/adapters/out/postgres/tenantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the adapter uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tenantrepo.TenantDTO{},
		&tablerepo.TableDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
