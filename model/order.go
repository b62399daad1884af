package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/constant"
)

// OrderEntity represents the order table entity. TotalPrice and the line item
// prices are snapshots frozen at creation time.
type OrderEntity struct {
	ID              uint64               `db:"id" json:"id"`
	UserID          uint64               `db:"user_id" json:"user_id"`
	CustomerName    string               `db:"customer_name" json:"customer_name"`
	Phone           string               `db:"phone" json:"phone"`
	Address         string               `db:"address" json:"address"`
	TotalPrice      decimal.Decimal      `db:"total_price" json:"total_price"`
	Status          constant.OrderStatus `db:"status" json:"status"`
	Courier         string               `db:"courier" json:"courier"`
	ShippingService string               `db:"shipping_service" json:"shipping_service"`
	ShippingCost    decimal.Decimal      `db:"shipping_cost" json:"shipping_cost"`
	ShippingEtd     string               `db:"shipping_etd" json:"shipping_etd"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

// OrderItemEntity is an immutable snapshot of a cart line at order creation.
type OrderItemEntity struct {
	ID        uint64          `db:"id" json:"id"`
	OrderID   uint64          `db:"order_id" json:"order_id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	Size      string          `db:"size" json:"size"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
}

// OrderDetail is the minimal row read inside transactions for state checks.
type OrderDetail struct {
	ID     uint64               `db:"id"`
	UserID uint64               `db:"user_id"`
	Status constant.OrderStatus `db:"status"`
}

type CreateOrderRequest struct {
	CustomerName    string          `json:"customer_name" validate:"required"`
	Phone           string          `json:"phone" validate:"required,numeric,min=10,max=15"`
	Address         string          `json:"address" validate:"required"`
	Courier         string          `json:"courier" validate:"required"`
	ShippingService string          `json:"shipping_service" validate:"required"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	ShippingEtd     string          `json:"shipping_etd"`
}

type InsertOrderTxItem struct {
	UserID          uint64
	CustomerName    string
	Phone           string
	Address         string
	TotalPrice      decimal.Decimal
	Status          constant.OrderStatus
	Courier         string
	ShippingService string
	ShippingCost    decimal.Decimal
	ShippingEtd     string
}

type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderResponse struct {
	Order OrderEntity       `json:"order"`
	Items []OrderItemEntity `json:"items"`
}

type OrderListResponse struct {
	Orders     []OrderEntity `json:"orders"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}
