package tenantrepo

import (
	"context"

	"siparisqr/internal/adapters/out/postgres/pgerr"
	"siparisqr/internal/core/domain/model/tenant"

	"gorm.io/gorm"
)

// GormTenantReader answers slug questions and resolves hosts to tenants outside
// any transaction.
type GormTenantReader struct {
	db *gorm.DB
}

func NewGormTenantReader(db *gorm.DB) *GormTenantReader {
	return &GormTenantReader{db: db}
}

func (r *GormTenantReader) ListSlugs(ctx context.Context) ([]string, error) {
	return listSlugs(ctx, r.db)
}

func (r *GormTenantReader) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&TenantDTO{}).Where("slug = ?", slug).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormTenantReader) FindTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var dto TenantDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error; err != nil {
		return nil, pgerr.Translate(err, "tenant", slug)
	}
	return toDomain(dto)
}
