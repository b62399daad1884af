package order

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/cmd/config"
	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	cartrepo "github.com/tokoapi/storefront/repository/cart"
	orderrepo "github.com/tokoapi/storefront/repository/order"
	productrepo "github.com/tokoapi/storefront/repository/product"
	transactionrepo "github.com/tokoapi/storefront/repository/transaction"
	txrepo "github.com/tokoapi/storefront/repository/tx"
	"github.com/tokoapi/storefront/thirdparty/rabbitmq"
	"github.com/tokoapi/storefront/utils/errors"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

// OrderApp owns the order lifecycle: creation from a cart snapshot, the status
// transition graph, the one-time stock decrement on confirmation, and the
// cancellation rules. Stock is deliberately not reserved at creation time; the
// authoritative check runs when an admin confirms, so two orders placed
// concurrently can both be created even if only one can later be confirmed.
type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.CreateOrderRequest) (*model.OrderResponse, error)
	TransitionStatus(ctx context.Context, orderID uint64, requested constant.OrderStatus) error
	CancelOrder(ctx context.Context, userID, orderID uint64) error
	CancelExpired(ctx context.Context, orderID uint64) error
	ConfirmReceipt(ctx context.Context, userID, orderID uint64) error
	GetOrder(ctx context.Context, userID, orderID uint64) (*model.OrderResponse, error)
	ListOrders(ctx context.Context, userID uint64, page, perPage int) (*model.OrderListResponse, error)
	ListAllOrders(ctx context.Context, page, perPage int) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	cartRepo        cartrepo.CartRepository
	productRepo     productrepo.ProductRepository
	transactionRepo transactionrepo.TransactionRepository
	publisher       *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository, transactionRepo transactionrepo.TransactionRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		config:          config,
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		cartRepo:        cartRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.CreateOrderRequest) (*model.OrderResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	lines, err := s.cartRepo.GetItemsTx(ctx, tx, userID)
	if err != nil {
		logger.Error("[CreateOrder] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	// Snapshot line prices and pre-check stock. Stock is not decremented here;
	// reservation happens once, at confirmation.
	now := time.Now()
	total := req.ShippingCost
	items := make([]model.OrderItemEntity, 0, len(lines))
	for _, line := range lines {
		if !line.ProductStatus.Purchasable() {
			logger.Info("[CreateOrder] product not purchasable", zap.Uint64("product_id", line.ProductID), zap.String("status", string(line.ProductStatus)))
			return nil, errors.SetCustomError(constant.ErrProductNotPurchasable)
		}
		if int64(line.Quantity) > line.Stock {
			logger.Info("[CreateOrder] insufficient stock", zap.Uint64("product_id", line.ProductID), zap.Int("need", line.Quantity), zap.Int64("available", line.Stock))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		unit := line.UnitPrice(now)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, model.OrderItemEntity{
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     unit,
		})
	}

	insert := &model.InsertOrderTxItem{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Address:         req.Address,
		TotalPrice:      total,
		Status:          constant.OrderStatusAwaitingConfirmation,
		Courier:         req.Courier,
		ShippingService: req.ShippingService,
		ShippingCost:    req.ShippingCost,
		ShippingEtd:     req.ShippingEtd,
	}
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, insert)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// The cart is consumed by checkout
	if err := s.cartRepo.DeleteCartTx(ctx, tx, userID); err != nil {
		logger.Error("[CreateOrder] delete cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			UserID:    userID,
			ExpiresAt: now.Add(s.config.Order.PaymentWindow),
		}
		if err := s.publisher.PublishOrderExpiration(msg); err != nil {
			logger.Error("[CreateOrder] publish order expiration", zap.String("error", err.Error()))
		}
	}

	order := model.OrderEntity{
		ID:              orderID,
		UserID:          userID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Address:         req.Address,
		TotalPrice:      total,
		Status:          constant.OrderStatusAwaitingConfirmation,
		Courier:         req.Courier,
		ShippingService: req.ShippingService,
		ShippingCost:    req.ShippingCost,
		ShippingEtd:     req.ShippingEtd,
		CreatedAt:       now,
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return &model.OrderResponse{Order: order, Items: items}, nil
}

// TransitionStatus applies an admin-requested transition. Entering
// Dikonfirmasi decrements stock for every line exactly once; the current
// status check makes re-confirmation a no-op.
func (s *orderAppImpl) TransitionStatus(ctx context.Context, orderID uint64, requested constant.OrderStatus) error {
	if !requested.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[TransitionStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[TransitionStatus] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	// Dibatalkan is absorbing, even for a repeated cancel
	if detail.Status == constant.OrderStatusCancelled {
		return errors.SetCustomError(constant.ErrOrderAlreadyCancelled)
	}

	// Idempotent: re-requesting the current status changes nothing
	if detail.Status == requested {
		return nil
	}

	if !constant.CanTransition(detail.Status, requested) {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	// First entry into Dikonfirmasi carries the one-time stock decrement
	if requested == constant.OrderStatusConfirmed {
		if err := s.decrementStockTx(ctx, tx, orderID); err != nil {
			return err
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, requested); err != nil {
		logger.Error("[TransitionStatus] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[TransitionStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// decrementStockTx locks every line's product row, re-validates stock and then
// decrements all lines. Runs inside the caller's transaction so two orders
// over-drawing a shared product cannot both confirm.
func (s *orderAppImpl) decrementStockTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[TransitionStatus] get order items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// Lock and validate every line before touching stock
	for _, item := range items {
		ps, err := s.productRepo.GetStockForUpdateTx(ctx, tx, item.ProductID)
		if err != nil {
			logger.Error("[TransitionStatus] lock product", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if ps == nil {
			logger.Error("[TransitionStatus] product missing", zap.Uint64("product_id", item.ProductID))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if ps.Stock < int64(item.Quantity) {
			logger.Info("[TransitionStatus] insufficient stock at confirmation", zap.Uint64("order_id", orderID), zap.Uint64("product_id", item.ProductID), zap.Int("need", item.Quantity), zap.Int64("available", ps.Stock))
			return errors.SetCustomError(constant.ErrInsufficientStock)
		}
	}

	for _, item := range items {
		remaining, err := s.productRepo.DecrementStockTx(ctx, tx, item.ProductID, item.Quantity)
		if err != nil {
			logger.Error("[TransitionStatus] decrement stock", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if remaining == 0 {
			if err := s.productRepo.UpdateStatusTx(ctx, tx, item.ProductID, constant.ProductStatusOutOfStock); err != nil {
				logger.Error("[TransitionStatus] mark out of stock", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		}
	}
	return nil
}

// CancelOrder is the user-initiated cancellation: only an unconfirmed, unpaid
// order can be cancelled. No restock is needed because stock was never
// decremented for an unconfirmed order.
func (s *orderAppImpl) CancelOrder(ctx context.Context, userID, orderID uint64) error {
	return s.cancel(ctx, orderID, &userID, false)
}

// CancelExpired is the payment-window expiration path driven by the queue
// consumer. It is tolerant: an order that was confirmed, cancelled or paid in
// the meantime is left alone.
func (s *orderAppImpl) CancelExpired(ctx context.Context, orderID uint64) error {
	return s.cancel(ctx, orderID, nil, true)
}

func (s *orderAppImpl) cancel(ctx context.Context, orderID uint64, owner *uint64, tolerant bool) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	// Foreign orders are indistinguishable from missing ones
	if owner != nil && detail.UserID != *owner {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if detail.Status != constant.OrderStatusAwaitingConfirmation {
		if tolerant {
			return nil
		}
		if detail.Status == constant.OrderStatusCancelled {
			return errors.SetCustomError(constant.ErrOrderAlreadyCancelled)
		}
		return errors.SetCustomError(constant.ErrOrderNotCancellable)
	}

	txn, err := s.transactionRepo.GetByOrderIDTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelOrder] get transaction", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if txn != nil && txn.Status.Paid() {
		if tolerant {
			return nil
		}
		return errors.SetCustomError(constant.ErrOrderAlreadyPaid)
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusCancelled); err != nil {
		logger.Error("[CancelOrder] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// ConfirmReceipt is the customer acknowledging delivery: Dikirim -> Sampai.
func (s *orderAppImpl) ConfirmReceipt(ctx context.Context, userID, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ConfirmReceipt] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ConfirmReceipt] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil || detail.UserID != userID {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if detail.Status != constant.OrderStatusShipped {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, constant.OrderStatusDelivered); err != nil {
		logger.Error("[ConfirmReceipt] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ConfirmReceipt] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// GetOrder returns an order with its items. A zero userID skips the ownership
// check (admin path); otherwise foreign orders read as not found.
func (s *orderAppImpl) GetOrder(ctx context.Context, userID, orderID uint64) (*model.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || (userID != 0 && order.UserID != userID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.OrderResponse{Order: *order, Items: items}, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, userID uint64, page, perPage int) (*model.OrderListResponse, error) {
	page, perPage = normalizePage(page, perPage)
	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, perPage)
	if err != nil {
		logger.Error("[ListOrders] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.OrderListResponse{Orders: orders, TotalCount: total, Page: page, PerPage: perPage}, nil
}

func (s *orderAppImpl) ListAllOrders(ctx context.Context, page, perPage int) (*model.OrderListResponse, error) {
	page, perPage = normalizePage(page, perPage)
	orders, total, err := s.orderRepo.ListOrders(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListAllOrders] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.OrderListResponse{Orders: orders, TotalCount: total, Page: page, PerPage: perPage}, nil
}

func normalizePage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	return page, perPage
}
