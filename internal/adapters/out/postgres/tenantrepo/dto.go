package tenantrepo

import (
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

type TenantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
}

func (TenantDTO) TableName() string {
	return "tenants"
}

func fromDomain(t *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:          t.ID().Bytes(),
		Slug:        t.Slug().String(),
		DisplayName: t.DisplayName(),
		Active:      t.IsActive(),
		CreatedAt:   t.CreatedAt(),
	}
}

func toDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	slug, err := tenant.NewSlug(dto.Slug)
	if err != nil {
		return nil, err
	}
	return tenant.RestoreTenant(id, slug, dto.DisplayName, dto.Active, dto.CreatedAt)
}
