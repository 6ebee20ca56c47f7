package tenantrepo

import (
	"context"

	"siparisqr/internal/adapters/out/postgres/pgerr"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTenantRepository struct {
	db *gorm.DB
}

func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// Add inserts the tenant. The unique index on slug turns a lost registration
// race into ObjectConflictError.
func (r *GormTenantRepository) Add(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "slug", dto.Slug)
}

func (r *GormTenantRepository) Update(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&TenantDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"display_name": aggregate.DisplayName(),
			"active":       aggregate.IsActive(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgerr.Translate(gorm.ErrRecordNotFound, "tenant", aggregate.ID().String())
	}
	return nil
}

// Get locks the row until the transaction ends.
func (r *GormTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenantDTO
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, "tenant", id.String())
	}
	return toDomain(dto)
}

func (r *GormTenantRepository) ListSlugs(ctx context.Context) ([]string, error) {
	return listSlugs(ctx, r.db)
}

func listSlugs(ctx context.Context, db *gorm.DB) ([]string, error) {
	slugs := make([]string, 0)
	if err := db.WithContext(ctx).Model(&TenantDTO{}).Order("slug").Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}
