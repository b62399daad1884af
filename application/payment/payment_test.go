package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	apppayment "github.com/tokoapi/storefront/application/payment"
	"github.com/tokoapi/storefront/constant"
	ordermocks "github.com/tokoapi/storefront/mocks/repository/order"
	transactionmocks "github.com/tokoapi/storefront/mocks/repository/transaction"
	txmocks "github.com/tokoapi/storefront/mocks/repository/tx"
	midtransmocks "github.com/tokoapi/storefront/mocks/thirdparty/midtrans"
	"github.com/tokoapi/storefront/model"
	"github.com/tokoapi/storefront/thirdparty/midtrans"
	cerr "github.com/tokoapi/storefront/utils/errors"
)

type paymentFields struct {
	txRepo          *txmocks.TxRepository
	orderRepo       *ordermocks.OrderRepository
	transactionRepo *transactionmocks.TransactionRepository
	gateway         *midtransmocks.Gateway
}

func newPaymentFields(t *testing.T) paymentFields {
	return paymentFields{
		txRepo:          txmocks.NewTxRepository(t),
		orderRepo:       ordermocks.NewOrderRepository(t),
		transactionRepo: transactionmocks.NewTransactionRepository(t),
		gateway:         midtransmocks.NewGateway(t),
	}
}

func newPaymentApp(f paymentFields) apppayment.PaymentApp {
	return apppayment.NewPaymentApp(f.txRepo, f.orderRepo, f.transactionRepo, f.gateway)
}

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

func TestPaymentApp_CreatePayment(t *testing.T) {
	awaiting := &model.OrderEntity{
		ID:           1,
		UserID:       1,
		CustomerName: "Budi",
		Phone:        "081234567890",
		TotalPrice:   decimal.NewFromInt(215000),
		Status:       constant.OrderStatusAwaitingConfirmation,
	}

	tests := []struct {
		name     string
		userID   uint64
		mockCall func(f paymentFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: snap session created and pending transaction stored",
			userID: 1,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(awaiting, nil).Once()
				f.transactionRepo.On("GetByOrderID", mock.Anything, uint64(1)).Return(nil, nil).Once()

				f.gateway.On("CreateSnapSession", mock.Anything, "ORDER-1", mock.MatchedBy(func(amount decimal.Decimal) bool {
					return amount.Equal(decimal.NewFromInt(215000))
				}), "Budi", "081234567890").Return(&midtrans.SnapSession{
					Token:       "snap-token",
					RedirectURL: "https://app.sandbox.midtrans.com/snap/v3/redirection/snap-token",
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.MatchedBy(func(item *model.UpsertTransactionTxItem) bool {
					return item.OrderID == 1 && item.Status == constant.TransactionStatusPending
				})).Return(nil).Once()
			},
		},
		{
			name:   "error: foreign order reads as not found",
			userID: 2,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(awaiting, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: cancelled order cannot be charged",
			userID: 1,
			mockCall: func(f paymentFields) {
				cancelled := *awaiting
				cancelled.Status = constant.OrderStatusCancelled
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(&cancelled, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderAlreadyCancelled,
		},
		{
			name:   "error: already settled",
			userID: 1,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(awaiting, nil).Once()
				f.transactionRepo.On("GetByOrderID", mock.Anything, uint64(1)).
					Return(&model.TransactionEntity{OrderID: 1, Status: constant.TransactionStatusSettlement}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderAlreadyPaid,
		},
		{
			name:   "error: gateway rejects the session",
			userID: 1,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(awaiting, nil).Once()
				f.transactionRepo.On("GetByOrderID", mock.Anything, uint64(1)).Return(nil, nil).Once()
				f.gateway.On("CreateSnapSession", mock.Anything, "ORDER-1", mock.Anything, "Budi", "081234567890").
					Return(nil, errors.New("midtrans: 401 unauthorized")).Once()
			},
			wantErr: true,
			errCode: constant.ErrGatewayError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newPaymentApp(f)

			got, err := app.CreatePayment(context.Background(), tt.userID, 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreatePayment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Token != "snap-token" {
				t.Fatalf("CreatePayment() token = %s, want snap-token", got.Token)
			}
		})
	}
}

func TestPaymentApp_HandleNotification(t *testing.T) {
	payload := []byte(`{"order_id":"ORDER-1","transaction_status":"settlement"}`)
	notification := &model.GatewayNotification{
		OrderRef:          "ORDER-1",
		TransactionStatus: "settlement",
	}

	verifiedAs := func(status constant.TransactionStatus) *model.GatewayStatus {
		return &model.GatewayStatus{
			OrderRef:      "ORDER-1",
			TransactionID: "txn-abc",
			Status:        status,
			FraudStatus:   "accept",
			PaymentType:   "bank_transfer",
			GrossAmount:   decimal.NewFromInt(215000),
			Raw:           []byte(`{"transaction_status":"settlement"}`),
		}
	}

	tests := []struct {
		name     string
		mockCall func(f paymentFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: verified settlement marks the transaction, order untouched",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(notification, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verifiedAs(constant.TransactionStatusSettlement), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).
					Return(&model.OrderDetail{ID: 1, UserID: 1, Status: constant.OrderStatusAwaitingConfirmation}, nil).Once()

				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.MatchedBy(func(item *model.UpsertTransactionTxItem) bool {
					return item.OrderID == 1 &&
						item.Status == constant.TransactionStatusSettlement &&
						item.GatewayTransactionID == "txn-abc"
				})).Return(nil).Once()
			},
		},
		{
			name: "success: verified deny cancels an unconfirmed order",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(notification, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verifiedAs(constant.TransactionStatusDeny), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).
					Return(&model.OrderDetail{ID: 1, UserID: 1, Status: constant.OrderStatusAwaitingConfirmation}, nil).Once()

				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusCancelled).
					Return(nil).Once()
			},
		},
		{
			name: "success: expiry on a confirmed order only records the transaction",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(notification, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verifiedAs(constant.TransactionStatusExpire), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).
					Return(&model.OrderDetail{ID: 1, UserID: 1, Status: constant.OrderStatusConfirmed}, nil).Once()

				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "success: pending changes nothing on the order",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(notification, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verifiedAs(constant.TransactionStatusPending), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).
					Return(&model.OrderDetail{ID: 1, UserID: 1, Status: constant.OrderStatusAwaitingConfirmation}, nil).Once()

				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error: malformed payload",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(nil, errors.New("unexpected end of JSON input")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unexpected order reference",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(&model.GatewayNotification{OrderRef: "INVOICE-1"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: verification round-trip fails, nothing is applied",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(notification, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(nil, errors.New("midtrans: 500")).Once()
			},
			wantErr: true,
			errCode: constant.ErrGatewayError,
		},
		{
			name: "error: order vanished",
			mockCall: func(f paymentFields) {
				f.gateway.On("ParseNotification", payload).Return(notification, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verifiedAs(constant.TransactionStatusSettlement), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newPaymentApp(f)

			err := app.HandleNotification(context.Background(), payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleNotification() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestPaymentApp_GetStatus(t *testing.T) {
	order := &model.OrderEntity{
		ID:         1,
		UserID:     1,
		TotalPrice: decimal.NewFromInt(215000),
		Status:     constant.OrderStatusAwaitingConfirmation,
	}

	raw := []byte(`{"va_numbers":[{"bank":"bca","va_number":"1234567890"}]}`)
	verified := &model.GatewayStatus{
		OrderRef:      "ORDER-1",
		TransactionID: "txn-abc",
		Status:        constant.TransactionStatusPending,
		PaymentType:   "bank_transfer",
		GrossAmount:   decimal.NewFromInt(215000),
		Raw:           raw,
	}

	tests := []struct {
		name     string
		userID   uint64
		mockCall func(f paymentFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: verified status persisted and returned with instructions",
			userID: 1,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(order, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verified, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).
					Return(&model.OrderDetail{ID: 1, UserID: 1, Status: constant.OrderStatusAwaitingConfirmation}, nil).Once()
				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "success: zero userID skips the ownership check",
			userID: 0,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(order, nil).Once()
				f.gateway.On("GetStatus", mock.Anything, "ORDER-1").Return(verified, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(1)).
					Return(&model.OrderDetail{ID: 1, UserID: 1, Status: constant.OrderStatusAwaitingConfirmation}, nil).Once()
				f.transactionRepo.On("UpsertTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "error: foreign order",
			userID: 2,
			mockCall: func(f paymentFields) {
				f.orderRepo.On("GetOrderByID", mock.Anything, uint64(1)).Return(order, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := newPaymentApp(f)

			got, err := app.GetStatus(context.Background(), tt.userID, 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Status != constant.TransactionStatusPending {
				t.Fatalf("GetStatus() status = %s, want pending", got.Status)
			}
			if len(got.Instructions) == 0 {
				t.Fatal("GetStatus() expected rendered payment instructions")
			}
		})
	}
}
