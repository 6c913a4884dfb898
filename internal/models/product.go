package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product rows are soft-deleted: DeletedAt is a tombstone checked by every
// read path.
type Product struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	Unit        string          `json:"unit"`
	CategoryID  int64           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"-"`
	Category    *Category       `json:"category,omitempty"`
}

// Price is a pointer so a free product (price 0) is distinguishable from a
// missing price.
type CreateProductRequest struct {
	Code        string   `json:"code" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Unit        string   `json:"unit" validate:"required"`
	CategoryID  int64    `json:"category_id" validate:"required"`
}

type UpdateProductRequest struct {
	Code        string   `json:"code" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Unit        string   `json:"unit" validate:"required"`
	CategoryID  int64    `json:"category_id" validate:"required"`
}

type ProductResource struct {
	ID          int64             `json:"id"`
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	Brand       string            `json:"brand"`
	Unit        string            `json:"unit"`
	Category    *CategoryResource `json:"category,omitempty"`
}

func NewProductResource(p *Product) *ProductResource {
	if p == nil {
		return nil
	}

	return &ProductResource{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Brand:       p.Brand,
		Unit:        p.Unit,
		Category:    NewCategoryResource(p.Category),
	}
}

func NewProductCollection(products []*Product) []*ProductResource {
	resources := make([]*ProductResource, 0, len(products))
	for _, p := range products {
		resources = append(resources, NewProductResource(p))
	}

	return resources
}
