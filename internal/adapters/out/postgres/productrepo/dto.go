// Package productrepo persists catalog products in the products table.
package productrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID        string          `gorm:"type:text;primaryKey"`
	Name      string          `gorm:"not null"`
	Code      string          `gorm:"type:text;not null;uniqueIndex"`
	Unit      string          `gorm:"type:text;not null"`
	Category  string          `gorm:"index"`
	Stock     int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL  string
	Active    bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().String(),
		Name:      p.Name(),
		Code:      p.Code(),
		Unit:      p.Unit(),
		Category:  p.Category(),
		Stock:     p.Stock(),
		Price:     p.Price(),
		ImageURL:  p.ImageURL(),
		Active:    p.IsActive(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, product.Details{
		Name:     dto.Name,
		Code:     dto.Code,
		Unit:     dto.Unit,
		Category: dto.Category,
		Stock:    dto.Stock,
		Price:    dto.Price,
		ImageURL: dto.ImageURL,
		Active:   dto.Active,
	}, dto.CreatedAt)
}
