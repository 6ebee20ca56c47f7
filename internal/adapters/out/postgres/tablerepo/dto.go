package tablerepo

import (
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableDTO is soft deleted. Numbers are unique per tenant among live tables only,
// so a deleted table's number can be reused.
type TableDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_dining_tables_tenant_number,priority:1,where:deleted_at IS NULL"`
	Number    string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_dining_tables_tenant_number,priority:2,where:deleted_at IS NULL"`
	Capacity  int            `gorm:"type:int;not null"`
	Active    bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime:false"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (TableDTO) TableName() string {
	return "dining_tables"
}

func fromDomain(t *table.Table) TableDTO {
	return TableDTO{
		ID:        t.ID().Bytes(),
		TenantID:  t.TenantID().Bytes(),
		Number:    t.Number(),
		Capacity:  t.Capacity(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt(),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	return table.RestoreTable(id, tenantID, dto.Number, dto.Capacity, dto.Active, dto.CreatedAt)
}
