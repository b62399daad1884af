package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/tokoapi/storefront/constant"
)

// PaymentSessionResponse carries the gateway checkout token returned to the
// client after a charge request.
type PaymentSessionResponse struct {
	OrderID     uint64 `json:"order_id"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// GatewayNotification is the parsed inbound webhook payload. Only the order
// reference is trusted; every status field must be re-verified against the
// gateway's status endpoint.
type GatewayNotification struct {
	OrderRef          string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
}

// GatewayStatus is the verified status returned by the gateway's own status
// query endpoint, the source of truth for reconciliation.
type GatewayStatus struct {
	OrderRef      string                     `json:"order_id"`
	TransactionID string                     `json:"transaction_id"`
	Status        constant.TransactionStatus `json:"transaction_status"`
	FraudStatus   string                     `json:"fraud_status"`
	PaymentType   string                     `json:"payment_type"`
	GrossAmount   decimal.Decimal            `json:"gross_amount"`
	Raw           json.RawMessage            `json:"-"`
}

// PaymentInstruction is one rendered (label, value) pair extracted from the
// gateway's free-form payload, e.g. a virtual account number.
type PaymentInstruction struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type PaymentStatusResponse struct {
	OrderID      uint64                     `json:"order_id"`
	Status       constant.TransactionStatus `json:"status"`
	PaymentType  string                     `json:"payment_type,omitempty"`
	FraudStatus  string                     `json:"fraud_status,omitempty"`
	Instructions []PaymentInstruction       `json:"instructions,omitempty"`
}
