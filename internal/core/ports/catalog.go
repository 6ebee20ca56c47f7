package ports

import (
	"context"

	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
)

// ProductCatalog gives ordering read access to a tenant's menu.
type ProductCatalog interface {
	// GetProduct returns errs.ObjectNotFoundError when the product does not exist and
	// errs.ForbiddenError when it exists on another tenant's menu.
	GetProduct(ctx context.Context, tenantID, productID kernel.UUID) (*catalog.Product, error)
}

// MenuReader lists what guests can order.
type MenuReader interface {
	// ListAvailableProducts returns the available products of a tenant ordered by name.
	ListAvailableProducts(ctx context.Context, tenantID kernel.UUID) ([]*catalog.Product, error)
}

// ProductRepository stores menu products. Menu editing screens are outside this
// service; the repository is used for seeding and price maintenance.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error
}
