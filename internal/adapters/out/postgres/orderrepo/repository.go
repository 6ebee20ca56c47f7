package orderrepo

import (
	"context"

	"siparisqr/internal/adapters/out/postgres/pgerr"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "order", aggregate.ID().String())
}

// Get reads the order without locking it; status changes are guarded by
// UpdateStatus instead.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return getOrder(ctx, r.db, tenantID, id)
}

// UpdateStatus is a compare-and-set on the status column. When the stored status
// is no longer expected, nothing is written and StaleStateError is returned.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.TenantID().Bytes(), int(expected)).
		Updates(map[string]any{
			"status":     int(aggregate.Status()),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("order", aggregate.ID(), expected)
	}
	return nil
}

func (r *GormOrderRepository) CountActiveByTable(ctx context.Context, tenantID, tableID kernel.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("tenant_id = ? AND table_id = ? AND status = ANY(?)",
			tenantID.Bytes(), tableID.Bytes(), pq.Array(statusCodes(order.ActiveStatuses()))).
		Count(&n).Error
	return n, err
}

func getOrder(ctx context.Context, db *gorm.DB, tenantID, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Items", orderItems).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, "order", id.String())
	}
	return toDomain(dto)
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
