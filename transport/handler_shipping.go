package transport

import (
	"encoding/json"
	"net/http"

	"github.com/tokoapi/storefront/constant"
	"github.com/tokoapi/storefront/model"
	"github.com/tokoapi/storefront/utils/errors"
	validatorx "github.com/tokoapi/storefront/utils/validator"
)

func (s *RestHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	res, err := s.ShippingApp.ListCities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetShippingCost(w http.ResponseWriter, r *http.Request) {
	var req model.ShippingCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShippingApp.GetRates(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
