package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrEmptyCart
	ErrInsufficientStock
	ErrInvalidOrderStatus
	ErrOrderNotCancellable
	ErrOrderAlreadyPaid
	ErrOrderAlreadyCancelled
	ErrProductNotPurchasable
	ErrReviewNotAllowed
	ErrGatewayError
	ErrShippingError
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrForbidden:             "forbidden",
	ErrCredentialExists:      "email or phone already exists",
	ErrInvalidPassword:       "password invalid",
	ErrEmptyCart:             "cart is empty",
	ErrInsufficientStock:     "insufficient product stock",
	ErrInvalidOrderStatus:    "order status transition not allowed",
	ErrOrderNotCancellable:   "order can no longer be cancelled",
	ErrOrderAlreadyPaid:      "order has already been paid",
	ErrOrderAlreadyCancelled: "order has been cancelled",
	ErrProductNotPurchasable: "product is not available for purchase",
	ErrReviewNotAllowed:      "order has not been delivered yet",
	ErrGatewayError:          "payment gateway error",
	ErrShippingError:         "shipping provider error",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrForbidden:             http.StatusForbidden,
	ErrCredentialExists:      http.StatusBadRequest,
	ErrInvalidPassword:       http.StatusBadRequest,
	ErrEmptyCart:             http.StatusBadRequest,
	ErrInsufficientStock:     http.StatusBadRequest,
	ErrInvalidOrderStatus:    http.StatusBadRequest,
	ErrOrderNotCancellable:   http.StatusBadRequest,
	ErrOrderAlreadyPaid:      http.StatusBadRequest,
	ErrOrderAlreadyCancelled: http.StatusBadRequest,
	ErrProductNotPurchasable: http.StatusBadRequest,
	ErrReviewNotAllowed:      http.StatusBadRequest,
	ErrGatewayError:          http.StatusInternalServerError,
	ErrShippingError:         http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrForbidden:             "0005",
	ErrCredentialExists:      "0006",
	ErrInvalidPassword:       "0007",
	ErrEmptyCart:             "0008",
	ErrInsufficientStock:     "0009",
	ErrInvalidOrderStatus:    "0010",
	ErrOrderNotCancellable:   "0011",
	ErrOrderAlreadyPaid:      "0012",
	ErrOrderAlreadyCancelled: "0013",
	ErrProductNotPurchasable: "0014",
	ErrReviewNotAllowed:      "0015",
	ErrGatewayError:          "0016",
	ErrShippingError:         "0017",
}
