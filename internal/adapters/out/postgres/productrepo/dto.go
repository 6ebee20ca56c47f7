package productrepo

import (
	"siparisqr/internal/core/domain/model/catalog"
	"siparisqr/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	PriceMinor int64     `gorm:"type:bigint;not null"`
	Available  bool      `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Bytes(),
		TenantID:   p.TenantID().Bytes(),
		Name:       p.Name(),
		PriceMinor: p.Price().Minor(),
		Available:  p.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.PriceMinor)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, tenantID, dto.Name, price, dto.Available)
}
