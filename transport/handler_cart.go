package transport

import (
	"encoding/json"
	"net/http"

	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	"github.com/tokoapi/storefront/utils/errors"
	validatorx "github.com/tokoapi/storefront/utils/validator"
)

func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.GetCart(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpsertCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpsertCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.UpsertItem(r.Context(), userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.UpdateQuantity(r.Context(), userID, itemID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CartApp.RemoveItem(r.Context(), userID, itemID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
