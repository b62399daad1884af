package constant

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusAwaitingConfirmation, OrderStatusConfirmed},
		{OrderStatusAwaitingConfirmation, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tr.from, tr.to)
		}
	}

	statuses := []OrderStatus{
		OrderStatusAwaitingConfirmation,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	isAllowed := func(from, to OrderStatus) bool {
		for _, tr := range allowed {
			if tr.from == from && tr.to == to {
				return true
			}
		}
		return false
	}

	// every edge outside the lifecycle graph is rejected
	for _, from := range statuses {
		for _, to := range statuses {
			if isAllowed(from, to) {
				continue
			}
			if CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = true, want false", from, to)
			}
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
		if len(orderTransitions[s]) != 0 {
			t.Errorf("%s has outgoing transitions", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusAwaitingConfirmation, OrderStatusConfirmed, OrderStatusShipped} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true, want false", s)
		}
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	if v := OrderStatus("Terkirim"); v.Valid() {
		t.Errorf("Valid() accepted unknown token %q", v)
	}
	if !OrderStatusAwaitingConfirmation.Valid() {
		t.Error("Valid() rejected Menunggu_Konfirmasi")
	}
}

func TestTransactionStatus(t *testing.T) {
	paid := []TransactionStatus{TransactionStatusSettlement, TransactionStatusCapture}
	failed := []TransactionStatus{TransactionStatusDeny, TransactionStatusCancel, TransactionStatusExpire}

	for _, s := range paid {
		if !s.Paid() || s.Failed() {
			t.Errorf("%s: Paid() = %v, Failed() = %v, want true/false", s, s.Paid(), s.Failed())
		}
	}
	for _, s := range failed {
		if s.Paid() || !s.Failed() {
			t.Errorf("%s: Paid() = %v, Failed() = %v, want false/true", s, s.Paid(), s.Failed())
		}
	}
	if TransactionStatusPending.Paid() || TransactionStatusPending.Failed() {
		t.Error("pending must be neither paid nor failed")
	}
}
