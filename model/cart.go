package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/constant"
)

type CartItemEntity struct {
	ID        uint64 `db:"id" json:"id"`
	UserID    uint64 `db:"user_id" json:"user_id"`
	ProductID uint64 `db:"product_id" json:"product_id"`
	Size      string `db:"size" json:"size"`
	Quantity  int    `db:"quantity" json:"quantity"`
}

// CartLine is a cart row joined to its product, the shape consumed at checkout.
type CartLine struct {
	CartItemID      uint64                 `db:"cart_item_id"`
	ProductID       uint64                 `db:"product_id"`
	ProductName     string                 `db:"product_name"`
	ProductStatus   constant.ProductStatus `db:"product_status"`
	Price           decimal.Decimal        `db:"price"`
	DiscountPercent *decimal.Decimal       `db:"discount_percent"`
	DiscountStart   *time.Time             `db:"discount_start"`
	DiscountEnd     *time.Time             `db:"discount_end"`
	Stock           int64                  `db:"stock"`
	Size            string                 `db:"size"`
	Quantity        int                    `db:"quantity"`
}

// UnitPrice is the snapshot price for the line at the given instant, with an
// active discount window applied.
func (l *CartLine) UnitPrice(now time.Time) decimal.Decimal {
	p := ProductEntity{
		Price:           l.Price,
		DiscountPercent: l.DiscountPercent,
		DiscountStart:   l.DiscountStart,
		DiscountEnd:     l.DiscountEnd,
	}
	return p.EffectivePrice(now)
}

type UpsertCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CartItemView struct {
	ID          uint64          `json:"id"`
	ProductID   uint64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}
