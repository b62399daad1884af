package transport

import (
	"io"
	"net/http"

	"github.com/tokoapi/storefront/constant"
	utilsContext "github.com/tokoapi/storefront/utils/context"
	"github.com/tokoapi/storefront/utils/errors"
)

// CreatePayment handler
// @Summary Create payment session
// @Description Opens a gateway checkout session for an unpaid order
// @Tags Payment
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.PaymentSessionResponse
// @Failure 400 {object} errors.CustomError
// @Router /payment/charge/{id} [post]
func (s *RestHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PaymentApp.CreatePayment(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PaymentNotification receives the gateway webhook. The claimed status in the
// body is never applied directly; the handler's application layer re-verifies
// it against the gateway before writing anything. Re-deliveries are benign and
// answered 200; a failed verification answers 500 so the gateway retries.
func (s *RestHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PaymentApp.HandleNotification(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// PaymentStatus handler
// @Summary Verified payment status
// @Description Force-refreshes the order's payment status from the gateway
// @Tags Payment
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.PaymentStatusResponse
// @Failure 404 {object} errors.CustomError
// @Router /payment/status/{id} [get]
func (s *RestHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Admins may inspect any order's payment state
	if utilsContext.IsAdmin(r.Context()) {
		userID = 0
	}

	res, err := s.PaymentApp.GetStatus(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
