package product

import (
	"context"

	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	productRepo "github.com/tokoapi/storefront/repository/product"
	"github.com/tokoapi/storefront/utils/errors"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int, includeHidden bool) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error)
	ArchiveProduct(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

// storefrontStatuses are the statuses visible to customers.
var storefrontStatuses = []constant.ProductStatus{
	constant.ProductStatusActive,
	constant.ProductStatusOutOfStock,
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int, includeHidden bool) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	statuses := storefrontStatuses
	if includeHidden {
		statuses = nil
	}
	items, total, err := s.productRepo.List(ctx, page, perPage, statuses)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error) {
	status := constant.ProductStatus(req.Status)
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.ProductEntity{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Stock:           req.Stock,
		Status:          status,
		Sizes:           req.Sizes,
		DiscountPercent: req.DiscountPercent,
		DiscountStart:   req.DiscountStart,
		DiscountEnd:     req.DiscountEnd,
	}
	id, err := s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id
	return entity, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Price != nil {
		entity.Price = *req.Price
	}
	if req.Stock != nil {
		entity.Stock = *req.Stock
		// Restocking an OUT_OF_STOCK product puts it back on sale
		if entity.Status == constant.ProductStatusOutOfStock && *req.Stock > 0 {
			entity.Status = constant.ProductStatusActive
		}
	}
	if req.Status != nil {
		status := constant.ProductStatus(*req.Status)
		if !status.Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		entity.Status = status
	}
	if req.Sizes != nil {
		entity.Sizes = *req.Sizes
	}
	if req.DiscountPercent != nil {
		entity.DiscountPercent = req.DiscountPercent
	}
	if req.DiscountStart != nil {
		entity.DiscountStart = req.DiscountStart
	}
	if req.DiscountEnd != nil {
		entity.DiscountEnd = req.DiscountEnd
	}

	if err := s.productRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

// ArchiveProduct soft-deletes: historical orders and carts keep referencing the
// row, only the status changes.
func (s *productAppImpl) ArchiveProduct(ctx context.Context, id uint64) error {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[ArchiveProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.UpdateStatus(ctx, id, constant.ProductStatusArchived); err != nil {
		logger.Error("[ArchiveProduct] error productRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
