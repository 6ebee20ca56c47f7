package tablerepo

import (
	"context"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"

	"gorm.io/gorm"
)

type GormTableReader struct {
	db *gorm.DB
}

func NewGormTableReader(db *gorm.DB) *GormTableReader {
	return &GormTableReader{db: db}
}

func (r *GormTableReader) ListTables(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error) {
	var dtos []TableDTO
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID.Bytes()).
		Order("number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	tables := make([]*table.Table, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (r *GormTableReader) CountTables(ctx context.Context, tenantID kernel.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&TableDTO{}).Where("tenant_id = ?", tenantID.Bytes()).Count(&n).Error
	return n, err
}
