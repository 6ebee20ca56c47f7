package orderrepo

import (
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_orders_tenant_status,priority:1"`
	TableID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status       int            `gorm:"type:smallint;not null;index:idx_orders_tenant_status,priority:2"`
	TotalMinor   int64          `gorm:"type:bigint;not null"`
	CustomerName string         `gorm:"type:varchar(100);not null;default:''"`
	Notes        string         `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt    time.Time      `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt    time.Time      `gorm:"not null;autoUpdateTime:false"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO keeps the product name and unit price as they were when the
// order was placed.
type OrderItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"type:smallint;primaryKey;autoIncrement:false"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null"`
	ProductName    string    `gorm:"type:varchar(100);not null"`
	Quantity       int       `gorm:"type:smallint;not null"`
	UnitPriceMinor int64     `gorm:"type:bigint;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:        orderID,
			Position:       i,
			ProductID:      item.ProductID().Bytes(),
			ProductName:    item.ProductName(),
			Quantity:       item.Quantity(),
			UnitPriceMinor: item.UnitPrice().Minor(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		TenantID:     o.TenantID().Bytes(),
		TableID:      o.TableID().Bytes(),
		Status:       int(o.Status()),
		TotalMinor:   o.Total().Minor(),
		CustomerName: o.CustomerName(),
		Notes:        o.Notes(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		Items:        dtos,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalMinor)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, tenantID, tableID, items, order.Status(dto.Status), total,
		dto.CustomerName, dto.Notes, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPriceMinor)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, dto.ProductName, dto.Quantity, price)
}

func statusCodes(statuses []order.Status) []int64 {
	codes := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int64(s))
	}
	return codes
}
