package queries

import (
	"context"

	"siparisqr/internal/core/ports"
)

type GetDashboardStatsQueryHandler struct {
	orders ports.OrderReader
	tables ports.TableReader
}

func NewGetDashboardStatsQueryHandler(orders ports.OrderReader, tables ports.TableReader) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{orders: orders, tables: tables}
}

func (h GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return DashboardStats{}, err
	}

	from, to := query.MonthBounds()
	stats, err := h.orders.Stats(ctx, query.TenantID(), from, to)
	if err != nil {
		return DashboardStats{}, err
	}
	tables, err := h.tables.CountTables(ctx, query.TenantID())
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		OrdersThisMonth:  stats.Created,
		RevenueThisMonth: stats.Revenue,
		ActiveOrders:     stats.Active,
		Tables:           tables,
		From:             from,
		To:               to,
	}, nil
}
