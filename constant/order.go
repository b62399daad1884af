package constant

import "strings"

// OrderStatus is the closed set of order lifecycle states. The tokens are the
// canonical wire values and are stored verbatim in the database.
type OrderStatus string

const (
	OrderStatusAwaitingConfirmation OrderStatus = "Menunggu_Konfirmasi"
	OrderStatusConfirmed            OrderStatus = "Dikonfirmasi"
	OrderStatusShipped              OrderStatus = "Dikirim"
	OrderStatusDelivered            OrderStatus = "Sampai"
	OrderStatusCancelled            OrderStatus = "Dibatalkan"
)

// orderTransitions is the allowed lifecycle graph. Sampai and Dibatalkan are
// terminal; Dibatalkan is additionally absorbing, callers must reject any
// request on a cancelled order before consulting the graph.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusAwaitingConfirmation: {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:            {OrderStatusShipped},
	OrderStatusShipped:              {OrderStatusDelivered},
	OrderStatusDelivered:            {},
	OrderStatusCancelled:            {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Label renders the status for display. Wire values keep the underscores.
func (s OrderStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransactionStatus is the payment gateway's status vocabulary, stored as-is
// on the Transaction row.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusSettlement TransactionStatus = "settlement"
	TransactionStatusCapture    TransactionStatus = "capture"
	TransactionStatusDeny       TransactionStatus = "deny"
	TransactionStatusCancel     TransactionStatus = "cancel"
	TransactionStatusExpire     TransactionStatus = "expire"
)

// Paid reports whether the gateway considers the payment successful.
func (s TransactionStatus) Paid() bool {
	return s == TransactionStatusSettlement || s == TransactionStatusCapture
}

// Failed reports whether the gateway terminally rejected or expired the payment.
func (s TransactionStatus) Failed() bool {
	return s == TransactionStatusDeny || s == TransactionStatusCancel || s == TransactionStatusExpire
}
