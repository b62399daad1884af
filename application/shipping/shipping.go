package shipping

import (
	"context"

	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	"github.com/tokoapi/storefront/thirdparty/rajaongkir"
	"github.com/tokoapi/storefront/utils/errors"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

// ShippingApp is a read-only pass-through over the shipping-rate provider.
// Provider failures surface to the caller; there is no internal retry.
type ShippingApp interface {
	ListCities(ctx context.Context) ([]model.City, error)
	GetRates(ctx context.Context, req *model.ShippingCostRequest) ([]model.ShippingRate, error)
}

type shippingAppImpl struct {
	client rajaongkir.Client
}

func NewShippingApp(client rajaongkir.Client) ShippingApp {
	return &shippingAppImpl{client: client}
}

func (s *shippingAppImpl) ListCities(ctx context.Context) ([]model.City, error) {
	cities, err := s.client.ListCities(ctx)
	if err != nil {
		logger.Error("[ListCities] provider call", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrShippingError, err.Error())
	}
	return cities, nil
}

func (s *shippingAppImpl) GetRates(ctx context.Context, req *model.ShippingCostRequest) ([]model.ShippingRate, error) {
	rates, err := s.client.GetCost(ctx, req.Destination, req.Weight, req.Courier)
	if err != nil {
		logger.Error("[GetRates] provider call", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrShippingError, err.Error())
	}
	return rates, nil
}
