package model

import "github.com/shopspring/decimal"

type City struct {
	ID       string `json:"city_id"`
	Name     string `json:"city_name"`
	Province string `json:"province"`
}

type ShippingCostRequest struct {
	Destination string `json:"destination" validate:"required"`
	Weight      int    `json:"weight" validate:"required,gt=0"` // grams
	Courier     string `json:"courier" validate:"required"`
}

type ShippingRate struct {
	Service     string          `json:"service"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Etd         string          `json:"etd"` // estimated days, provider format
}
