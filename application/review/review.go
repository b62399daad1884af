package review

import (
	"context"

	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	orderrepo "github.com/tokoapi/storefront/repository/order"
	reviewrepo "github.com/tokoapi/storefront/repository/review"
	"github.com/tokoapi/storefront/utils/errors"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

type ReviewApp interface {
	UpsertReview(ctx context.Context, userID, orderID uint64, req *model.ReviewRequest) error
	ListReviews(ctx context.Context, orderID uint64) ([]model.ReviewEntity, error)
}

type reviewAppImpl struct {
	orderRepo  orderrepo.OrderRepository
	reviewRepo reviewrepo.ReviewRepository
}

func NewReviewApp(orderRepo orderrepo.OrderRepository, reviewRepo reviewrepo.ReviewRepository) ReviewApp {
	return &reviewAppImpl{orderRepo: orderRepo, reviewRepo: reviewRepo}
}

// UpsertReview stores post-delivery feedback. Only a delivered order owned by
// the caller may be reviewed; a repeat submission overwrites the previous
// rating and comment.
func (s *reviewAppImpl) UpsertReview(ctx context.Context, userID, orderID uint64, req *model.ReviewRequest) error {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[UpsertReview] get order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || order.UserID != userID {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if order.Status != constant.OrderStatusDelivered {
		return errors.SetCustomError(constant.ErrReviewNotAllowed)
	}

	rv := &model.ReviewEntity{
		OrderID: orderID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviewRepo.Upsert(ctx, rv); err != nil {
		logger.Error("[UpsertReview] upsert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *reviewAppImpl) ListReviews(ctx context.Context, orderID uint64) ([]model.ReviewEntity, error) {
	reviews, err := s.reviewRepo.ListByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[ListReviews] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reviews, nil
}
