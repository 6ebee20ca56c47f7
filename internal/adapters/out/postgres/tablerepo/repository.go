package tablerepo

import (
	"context"

	"siparisqr/internal/adapters/out/postgres/pgerr"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "number", dto.Number)
}

func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ? AND tenant_id = ?", aggregate.ID().Bytes(), aggregate.TenantID().Bytes()).
		Updates(map[string]any{
			"number":   aggregate.Number(),
			"capacity": aggregate.Capacity(),
			"active":   aggregate.IsActive(),
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "number", aggregate.Number())
	}
	if result.RowsAffected == 0 {
		return pgerr.Translate(gorm.ErrRecordNotFound, "table", aggregate.ID().String())
	}
	return nil
}

// Get locks the table row until the transaction ends. Placing an order and
// deleting the table both take this lock, so they cannot interleave.
func (r *GormTableRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, "table", id.String())
	}
	return toDomain(dto)
}

func (r *GormTableRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&TableDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgerr.Translate(gorm.ErrRecordNotFound, "table", id.String())
	}
	return nil
}
