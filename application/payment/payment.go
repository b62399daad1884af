package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	orderrepo "github.com/tokoapi/storefront/repository/order"
	transactionrepo "github.com/tokoapi/storefront/repository/transaction"
	txrepo "github.com/tokoapi/storefront/repository/tx"
	"github.com/tokoapi/storefront/thirdparty/midtrans"
	"github.com/tokoapi/storefront/utils/errors"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

const orderRefPrefix = "ORDER-"

// PaymentApp reconciles the order lifecycle with the payment gateway. Webhook
// payloads are never trusted: the gateway's status endpoint is queried before
// anything is written. A successful payment is a Transaction-level fact and
// does not advance the order status; confirmation stays an admin action.
type PaymentApp interface {
	CreatePayment(ctx context.Context, userID, orderID uint64) (*model.PaymentSessionResponse, error)
	HandleNotification(ctx context.Context, payload []byte) error
	GetStatus(ctx context.Context, userID, orderID uint64) (*model.PaymentStatusResponse, error)
}

type paymentAppImpl struct {
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	transactionRepo transactionrepo.TransactionRepository
	gateway         midtrans.Gateway
}

func NewPaymentApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, transactionRepo transactionrepo.TransactionRepository, gateway midtrans.Gateway) PaymentApp {
	return &paymentAppImpl{
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
		gateway:         gateway,
	}
}

// FormatOrderRef renders the gateway-side order reference.
func FormatOrderRef(orderID uint64) string {
	return fmt.Sprintf("%s%d", orderRefPrefix, orderID)
}

func parseOrderRef(ref string) (uint64, error) {
	raw, ok := strings.CutPrefix(ref, orderRefPrefix)
	if !ok {
		return 0, fmt.Errorf("unexpected order reference %q", ref)
	}
	return strconv.ParseUint(raw, 10, 64)
}

func (s *paymentAppImpl) CreatePayment(ctx context.Context, userID, orderID uint64) (*model.PaymentSessionResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[CreatePayment] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || order.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if order.Status != constant.OrderStatusAwaitingConfirmation {
		if order.Status == constant.OrderStatusCancelled {
			return nil, errors.SetCustomError(constant.ErrOrderAlreadyCancelled)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	existing, err := s.transactionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[CreatePayment] get transaction", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil && existing.Status.Paid() {
		return nil, errors.SetCustomError(constant.ErrOrderAlreadyPaid)
	}

	session, err := s.gateway.CreateSnapSession(ctx, FormatOrderRef(orderID), order.TotalPrice, order.CustomerName, order.Phone)
	if err != nil {
		logger.Error("[CreatePayment] create session", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrGatewayError, err.Error())
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreatePayment] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	item := &model.UpsertTransactionTxItem{
		OrderID: orderID,
		Amount:  order.TotalPrice,
		Status:  constant.TransactionStatusPending,
	}
	if err := s.transactionRepo.UpsertTx(ctx, tx, item); err != nil {
		logger.Error("[CreatePayment] upsert transaction", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreatePayment] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.PaymentSessionResponse{
		OrderID:     orderID,
		Token:       session.Token,
		RedirectURL: session.RedirectURL,
	}, nil
}

// HandleNotification processes one gateway webhook delivery. Deliveries are
// at-least-once and may arrive out of order; the verified upsert keyed by
// order id makes replays converge on the same row state. A failed verification
// round-trip applies nothing, the gateway's own retry schedule covers it.
func (s *paymentAppImpl) HandleNotification(ctx context.Context, payload []byte) error {
	notification, err := s.gateway.ParseNotification(payload)
	if err != nil {
		logger.Warn("[HandleNotification] malformed payload", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	orderID, err := parseOrderRef(notification.OrderRef)
	if err != nil {
		logger.Warn("[HandleNotification] bad order reference", zap.String("order_ref", notification.OrderRef))
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// The pushed status is ignored; the gateway's status endpoint decides.
	verified, err := s.gateway.GetStatus(ctx, notification.OrderRef)
	if err != nil {
		logger.Error("[HandleNotification] verify status", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return errors.SetCustomErrorWithMessage(constant.ErrGatewayError, err.Error())
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[HandleNotification] begin tx", zap.String("error", err.Error()))
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
		logger.Error("[HandleNotification] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.applyVerifiedTx(ctx, tx, detail, verified); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[HandleNotification] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// applyVerifiedTx upserts the Transaction from a verified gateway status and
// applies the derived order effect: a failed payment cancels an order that is
// still awaiting confirmation; a successful one only marks the Transaction,
// and pending changes nothing.
func (s *paymentAppImpl) applyVerifiedTx(ctx context.Context, tx *sqlx.Tx, detail *model.OrderDetail, verified *model.GatewayStatus) error {
	item := &model.UpsertTransactionTxItem{
		OrderID:              detail.ID,
		GatewayTransactionID: verified.TransactionID,
		PaymentType:          verified.PaymentType,
		Amount:               verified.GrossAmount,
		Status:               verified.Status,
		FraudStatus:          verified.FraudStatus,
		RawResponse:          verified.Raw,
	}
	if err := s.transactionRepo.UpsertTx(ctx, tx, item); err != nil {
		logger.Error("[HandleNotification] upsert transaction", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if verified.Status.Failed() {
		if detail.Status == constant.OrderStatusAwaitingConfirmation {
			if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, detail.ID, constant.OrderStatusCancelled); err != nil {
				logger.Error("[HandleNotification] cancel order", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		} else if detail.Status != constant.OrderStatusCancelled {
			// A payment failing after confirmation is an operational problem,
			// not something the webhook may resolve by itself.
			logger.Warn("[HandleNotification] failed payment on progressed order",
				zap.Uint64("order_id", detail.ID),
				zap.String("order_status", string(detail.Status)),
				zap.String("gateway_status", string(verified.Status)))
		}
	}
	return nil
}

// GetStatus force-refreshes the verified gateway status for an order, persists
// it and returns it with rendered payment instructions.
func (s *paymentAppImpl) GetStatus(ctx context.Context, userID, orderID uint64) (*model.PaymentStatusResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetStatus] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || (userID != 0 && order.UserID != userID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	verified, err := s.gateway.GetStatus(ctx, FormatOrderRef(orderID))
	if err != nil {
		logger.Error("[GetStatus] verify status", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrGatewayError, err.Error())
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[GetStatus] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	detail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[GetStatus] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.applyVerifiedTx(ctx, tx, detail, verified); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[GetStatus] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.PaymentStatusResponse{
		OrderID:      orderID,
		Status:       verified.Status,
		PaymentType:  verified.PaymentType,
		FraudStatus:  verified.FraudStatus,
		Instructions: midtrans.ExtractInstructions(verified.Raw),
	}, nil
}
