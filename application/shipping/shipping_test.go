package shipping_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	appshipping "github.com/tokoapi/storefront/application/shipping"
	"github.com/tokoapi/storefront/constant"
	rajaongkirmocks "github.com/tokoapi/storefront/mocks/thirdparty/rajaongkir"
	"github.com/tokoapi/storefront/model"
	cerr "github.com/tokoapi/storefront/utils/errors"
)

func TestShippingApp_GetRates(t *testing.T) {
	req := &model.ShippingCostRequest{Destination: "114", Weight: 1200, Courier: "jne"}

	t.Run("success: provider rates pass through", func(t *testing.T) {
		client := rajaongkirmocks.NewClient(t)
		client.On("GetCost", mock.Anything, "114", 1200, "jne").Return([]model.ShippingRate{
			{Service: "REG", Description: "Layanan Reguler", Cost: decimal.NewFromInt(15000), Etd: "2-3"},
		}, nil).Once()

		app := appshipping.NewShippingApp(client)
		rates, err := app.GetRates(context.Background(), req)
		if err != nil {
			t.Fatalf("GetRates() error = %v", err)
		}
		if len(rates) != 1 || rates[0].Service != "REG" {
			t.Fatalf("GetRates() = %+v, want one REG rate", rates)
		}
	})

	t.Run("error: provider failure surfaces its message", func(t *testing.T) {
		client := rajaongkirmocks.NewClient(t)
		client.On("GetCost", mock.Anything, "114", 1200, "jne").
			Return(nil, errors.New("rajaongkir: invalid destination")).Once()

		app := appshipping.NewShippingApp(client)
		_, err := app.GetRates(context.Background(), req)
		if err == nil {
			t.Fatal("GetRates() expected error")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrShippingError] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrShippingError])
		}
		if ce.Error() != "rajaongkir: invalid destination" {
			t.Fatalf("error message = %q, want provider message", ce.Error())
		}
	})
}

func TestShippingApp_ListCities(t *testing.T) {
	client := rajaongkirmocks.NewClient(t)
	client.On("ListCities", mock.Anything).Return([]model.City{
		{ID: "501", Name: "Yogyakarta", Province: "DI Yogyakarta"},
	}, nil).Once()

	app := appshipping.NewShippingApp(client)
	cities, err := app.ListCities(context.Background())
	if err != nil {
		t.Fatalf("ListCities() error = %v", err)
	}
	if len(cities) != 1 || cities[0].ID != "501" {
		t.Fatalf("ListCities() = %+v, want Yogyakarta", cities)
	}
}
