package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/constant"
)

// TransactionEntity is the payment record, one per order (unique order_id).
// RawResponse keeps the gateway's last verified payload for audit and for
// rendering payment instructions.
type TransactionEntity struct {
	ID                   uint64                     `db:"id" json:"id"`
	OrderID              uint64                     `db:"order_id" json:"order_id"`
	GatewayTransactionID string                     `db:"gateway_transaction_id" json:"gateway_transaction_id"`
	PaymentType          string                     `db:"payment_type" json:"payment_type"`
	Amount               decimal.Decimal            `db:"amount" json:"amount"`
	Status               constant.TransactionStatus `db:"status" json:"status"`
	FraudStatus          string                     `db:"fraud_status" json:"fraud_status"`
	RawResponse          json.RawMessage            `db:"raw_response" json:"-"`
	CreatedAt            time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt            *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

type UpsertTransactionTxItem struct {
	OrderID              uint64
	GatewayTransactionID string
	PaymentType          string
	Amount               decimal.Decimal
	Status               constant.TransactionStatus
	FraudStatus          string
	RawResponse          json.RawMessage
}
