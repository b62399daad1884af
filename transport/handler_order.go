package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	"github.com/tokoapi/storefront/utils/errors"
	validatorx "github.com/tokoapi/storefront/utils/validator"
)

// CreateOrder handler
// @Summary Create order from cart
// @Description Creates an order snapshot from the caller's cart; stock is not decremented until an admin confirms
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Checkout Request"
// @Success 201 {object} model.OrderResponse
// @Failure 400 {object} errors.CustomError
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.OrderApp.ListOrders(r.Context(), userID, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.OrderApp.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel own order
// @Description Cancels an order that is still awaiting confirmation and unpaid
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /orders/cancel/{id} [put]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
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

	if err := s.OrderApp.CancelOrder(r.Context(), userID, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
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

	if err := s.OrderApp.ConfirmReceipt(r.Context(), userID, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
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

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReviewApp.UpsertReview(r.Context(), userID, orderID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AdminTransitionOrder handler
// @Summary Transition order status
// @Description Moves an order along its lifecycle; entering Dikonfirmasi decrements stock exactly once
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.TransitionStatusRequest true "Requested Status"
// @Success 200 {object} response
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /admin/orders/{id} [put]
func (s *RestHandler) AdminTransitionOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.TransitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.TransitionStatus(r.Context(), orderID, constant.OrderStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.OrderApp.ListAllOrders(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// InternalCancelOrder is called by the expiration consumer when an order's
// payment window elapses. Orders that progressed or paid in the meantime are
// left untouched.
func (s *RestHandler) InternalCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.CancelExpired(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
