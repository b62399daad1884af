package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/constant"
)

// ProductEntity represents the product table entity. Sizes is a comma separated
// set; DiscountPercent applies only inside the [DiscountStart, DiscountEnd)
// window.
type ProductEntity struct {
	ID              uint64                 `db:"id" json:"id"`
	Name            string                 `db:"name" json:"name"`
	Description     string                 `db:"description" json:"description,omitempty"`
	Price           decimal.Decimal        `db:"price" json:"price"`
	Stock           int64                  `db:"stock" json:"stock"`
	Status          constant.ProductStatus `db:"status" json:"status"`
	Sizes           string                 `db:"sizes" json:"sizes"`
	DiscountPercent *decimal.Decimal       `db:"discount_percent" json:"discount_percent,omitempty"`
	DiscountStart   *time.Time             `db:"discount_start" json:"discount_start,omitempty"`
	DiscountEnd     *time.Time             `db:"discount_end" json:"discount_end,omitempty"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

// EffectivePrice returns the unit price at the given instant, with an active
// discount window applied.
func (p *ProductEntity) EffectivePrice(now time.Time) decimal.Decimal {
	if p.DiscountPercent == nil || p.DiscountStart == nil || p.DiscountEnd == nil {
		return p.Price
	}
	if now.Before(*p.DiscountStart) || !now.Before(*p.DiscountEnd) {
		return p.Price
	}
	discount := p.Price.Mul(*p.DiscountPercent).Div(decimal.NewFromInt(100))
	return p.Price.Sub(discount)
}

// ProductStock is the row shape read under FOR UPDATE during order confirmation.
type ProductStock struct {
	ID    uint64 `db:"id"`
	Stock int64  `db:"stock"`
}

type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price" validate:"required"`
	Stock           int64            `json:"stock" validate:"gte=0"`
	Status          string           `json:"status" validate:"required"`
	Sizes           string           `json:"sizes"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	DiscountStart   *time.Time       `json:"discount_start"`
	DiscountEnd     *time.Time       `json:"discount_end"`
}

type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	Stock           *int64           `json:"stock" validate:"omitempty,gte=0"`
	Status          *string          `json:"status"`
	Sizes           *string          `json:"sizes"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	DiscountStart   *time.Time       `json:"discount_start"`
	DiscountEnd     *time.Time       `json:"discount_end"`
}

type ProductListResponse struct {
	Items      []ProductEntity `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}
