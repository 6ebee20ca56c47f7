package orderrepo

import (
	"context"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderReader serves the kitchen display, table screens and dashboard.
// It reads committed rows only and takes no locks.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) ListOrders(ctx context.Context, tenantID kernel.UUID, statuses []order.Status) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("tenant_id = ?", tenantID.Bytes())
	if len(statuses) > 0 {
		query = query.Where("status = ANY(?)", pq.Array(statusCodes(statuses)))
	}

	var dtos []OrderDTO
	if err := query.Order("status, created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderReader) GetOrder(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	return getOrder(ctx, r.db, tenantID, id)
}

func (r *GormOrderReader) ListOrdersCreatedBefore(
	ctx context.Context,
	status order.Status,
	before time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("status = ? AND created_at < ?", int(status), before).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

type statsRow struct {
	Created int64
	Revenue int64
	Active  int64
}

func (r *GormOrderReader) Stats(ctx context.Context, tenantID kernel.UUID, from, to time.Time) (ports.OrderStats, error) {
	var row statsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE created_at >= @from AND created_at < @to) AS created,
			COALESCE(SUM(total_minor) FILTER (
				WHERE status = @completed AND created_at >= @from AND created_at < @to
			), 0) AS revenue,
			COUNT(*) FILTER (WHERE status = ANY(@active)) AS active
		FROM orders
		WHERE tenant_id = @tenant
	`, map[string]any{
		"from":      from,
		"to":        to,
		"completed": int(order.Completed),
		"active":    pq.Array(statusCodes(order.ActiveStatuses())),
		"tenant":    tenantID.Bytes(),
	}).Scan(&row).Error
	if err != nil {
		return ports.OrderStats{}, err
	}

	revenue, err := kernel.NewMoney(row.Revenue)
	if err != nil {
		return ports.OrderStats{}, err
	}
	return ports.OrderStats{Created: row.Created, Revenue: revenue, Active: row.Active}, nil
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
