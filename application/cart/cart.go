package cart

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	cartrepo "github.com/tokoapi/storefront/repository/cart"
	productrepo "github.com/tokoapi/storefront/repository/product"
	"github.com/tokoapi/storefront/utils/errors"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	GetCart(ctx context.Context, userID uint64) (*model.CartResponse, error)
	UpsertItem(ctx context.Context, userID uint64, req *model.UpsertCartItemRequest) error
	UpdateQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error
	RemoveItem(ctx context.Context, userID, cartItemID uint64) error
}

type cartAppImpl struct {
	cartRepo    cartrepo.CartRepository
	productRepo productrepo.ProductRepository
}

func NewCartApp(cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository) CartApp {
	return &cartAppImpl{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartAppImpl) GetCart(ctx context.Context, userID uint64) (*model.CartResponse, error) {
	lines, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		logger.Error("[GetCart] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	total := decimal.Zero
	items := make([]model.CartItemView, 0, len(lines))
	for _, line := range lines {
		unit := line.UnitPrice(now)
		subtotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		items = append(items, model.CartItemView{
			ID:          line.CartItemID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Size:        line.Size,
			Quantity:    line.Quantity,
			UnitPrice:   unit,
			Subtotal:    subtotal,
		})
	}
	return &model.CartResponse{Items: items, Total: total}, nil
}

func (s *cartAppImpl) UpsertItem(ctx context.Context, userID uint64, req *model.UpsertCartItemRequest) error {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[UpsertItem] get product", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !product.Status.Purchasable() {
		return errors.SetCustomError(constant.ErrProductNotPurchasable)
	}
	// Cart additions are advisory only; the hard stock check runs at
	// confirmation. Rejecting obviously impossible quantities here keeps the
	// error close to the user.
	if int64(req.Quantity) > product.Stock {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}

	if err := s.cartRepo.UpsertItem(ctx, userID, req); err != nil {
		logger.Error("[UpsertItem] upsert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error {
	if quantity <= 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.cartRepo.UpdateQuantity(ctx, userID, cartItemID, quantity); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateQuantity] update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, userID, cartItemID uint64) error {
	if err := s.cartRepo.RemoveItem(ctx, userID, cartItemID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[RemoveItem] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
