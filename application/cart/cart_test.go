package cart_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	appcart "github.com/tokoapi/storefront/application/cart"
	"github.com/tokoapi/storefront/constant"
	cartmocks "github.com/tokoapi/storefront/mocks/repository/cart"
	productmocks "github.com/tokoapi/storefront/mocks/repository/product"
	"github.com/tokoapi/storefront/model"
	cerr "github.com/tokoapi/storefront/utils/errors"
)

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestCartApp_GetCart(t *testing.T) {
	t.Run("success: totals use the discounted unit price", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		productRepo := productmocks.NewProductRepository(t)

		pct := decimal.NewFromInt(50)
		start := time.Now().Add(-time.Hour)
		end := time.Now().Add(time.Hour)
		cartRepo.On("GetItems", mock.Anything, uint64(1)).Return([]model.CartLine{
			{
				CartItemID:    10,
				ProductID:     7,
				ProductName:   "Kaos Polos",
				ProductStatus: constant.ProductStatusActive,
				Price:         decimal.NewFromInt(100000),
				Stock:         10,
				Size:          "M",
				Quantity:      2,
			},
			{
				CartItemID:      11,
				ProductID:       8,
				ProductName:     "Kemeja Flanel",
				ProductStatus:   constant.ProductStatusActive,
				Price:           decimal.NewFromInt(200000),
				DiscountPercent: &pct,
				DiscountStart:   &start,
				DiscountEnd:     &end,
				Stock:           4,
				Size:            "L",
				Quantity:        1,
			},
		}, nil).Once()

		app := appcart.NewCartApp(cartRepo, productRepo)
		got, err := app.GetCart(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetCart() error = %v", err)
		}
		if len(got.Items) != 2 {
			t.Fatalf("GetCart() items = %d, want 2", len(got.Items))
		}
		if !got.Total.Equal(decimal.NewFromInt(300000)) {
			t.Fatalf("GetCart() total = %s, want 300000", got.Total)
		}
		if !got.Items[1].UnitPrice.Equal(decimal.NewFromInt(100000)) {
			t.Fatalf("GetCart() discounted unit = %s, want 100000", got.Items[1].UnitPrice)
		}
	})
}

func TestCartApp_UpsertItem(t *testing.T) {
	req := &model.UpsertCartItemRequest{ProductID: 7, Size: "M", Quantity: 2}

	tests := []struct {
		name     string
		mockCall func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: purchasable product within stock",
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductEntity{
					ID:     7,
					Status: constant.ProductStatusActive,
					Stock:  10,
				}, nil).Once()
				cartRepo.On("UpsertItem", mock.Anything, uint64(1), req).Return(nil).Once()
			},
		},
		{
			name: "error: archived product",
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductEntity{
					ID:     7,
					Status: constant.ProductStatusArchived,
					Stock:  10,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotPurchasable,
		},
		{
			name: "error: quantity exceeds stock",
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductEntity{
					ID:     7,
					Status: constant.ProductStatusActive,
					Stock:  1,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: unknown product",
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				productRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := cartmocks.NewCartRepository(t)
			productRepo := productmocks.NewProductRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(cartRepo, productRepo)
			}
			app := appcart.NewCartApp(cartRepo, productRepo)

			err := app.UpsertItem(context.Background(), 1, req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpsertItem() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		mockCall func(cartRepo *cartmocks.CartRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success",
			quantity: 3,
			mockCall: func(cartRepo *cartmocks.CartRepository) {
				cartRepo.On("UpdateQuantity", mock.Anything, uint64(1), uint64(10), 3).Return(nil).Once()
			},
		},
		{
			name:     "error: non-positive quantity",
			quantity: 0,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: item not in this user's cart",
			quantity: 3,
			mockCall: func(cartRepo *cartmocks.CartRepository) {
				cartRepo.On("UpdateQuantity", mock.Anything, uint64(1), uint64(10), 3).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := cartmocks.NewCartRepository(t)
			productRepo := productmocks.NewProductRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(cartRepo)
			}
			app := appcart.NewCartApp(cartRepo, productRepo)

			err := app.UpdateQuantity(context.Background(), 1, 10, tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
