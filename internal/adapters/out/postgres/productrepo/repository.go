package productrepo

import (
	"context"
	"fmt"

	"siparisqr/internal/adapters/out/postgres/pgerr"
	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "product", product.ID().String())
}

func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND tenant_id = ?", product.ID().Bytes(), product.TenantID().Bytes()).
		Updates(map[string]any{
			"name":        product.Name(),
			"price_minor": product.Price().Minor(),
			"available":   product.IsAvailable(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgerr.Translate(gorm.ErrRecordNotFound, "product", product.ID().String())
	}
	return nil
}

// GormProductCatalog serves menu lookups for order placement and the guest menu.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

func (c *GormProductCatalog) GetProduct(ctx context.Context, tenantID, productID kernel.UUID) (*catalog.Product, error) {
	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "product", productID.String())
	}

	p, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	if !p.BelongsTo(tenantID) {
		return nil, errs.NewForbiddenError(fmt.Sprintf("product %s belongs to another tenant", productID))
	}
	return p, nil
}

func (c *GormProductCatalog) ListAvailableProducts(ctx context.Context, tenantID kernel.UUID) ([]*catalog.Product, error) {
	var dtos []ProductDTO
	err := c.db.WithContext(ctx).
		Where("tenant_id = ? AND available", tenantID.Bytes()).
		Order("name ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
