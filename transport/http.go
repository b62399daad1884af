package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	cartapp "github.com/tokoapi/storefront/application/cart"
	orderapp "github.com/tokoapi/storefront/application/order"
	paymentapp "github.com/tokoapi/storefront/application/payment"
	productapp "github.com/tokoapi/storefront/application/product"
	reviewapp "github.com/tokoapi/storefront/application/review"
	shippingapp "github.com/tokoapi/storefront/application/shipping"
	userapp "github.com/tokoapi/storefront/application/user"
	"github.com/tokoapi/storefront/cmd/config"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	ProductApp  productapp.ProductApp
	CartApp     cartapp.CartApp
	OrderApp    orderapp.OrderApp
	PaymentApp  paymentapp.PaymentApp
	ReviewApp   reviewapp.ReviewApp
	ShippingApp shippingapp.ShippingApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/shipping/cities", rh.ListCities).Methods(http.MethodGet)
	router.HandleFunc("/shipping/cost", rh.GetShippingCost).Methods(http.MethodPost)

	// Gateway webhook, reachable without a session
	router.HandleFunc("/payment/notification", rh.PaymentNotification).Methods(http.MethodPost)

	// Authenticated user routes
	router.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	router.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart", rh.UpsertCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/{id}", rh.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/cart/{id}", rh.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/orders/cancel/{id}", rh.CancelOrder).Methods(http.MethodPut)
	router.HandleFunc("/orders/received/{id}", rh.ConfirmReceipt).Methods(http.MethodPut)
	router.HandleFunc("/orders/review/{id}", rh.UpsertReview).Methods(http.MethodPost)
	router.HandleFunc("/payment/charge/{id}", rh.CreatePayment).Methods(http.MethodPost)
	router.HandleFunc("/payment/status/{id}", rh.PaymentStatus).Methods(http.MethodGet)

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware())
	admin.HandleFunc("/orders", rh.AdminListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", rh.AdminTransitionOrder).Methods(http.MethodPut)
	admin.HandleFunc("/products", rh.AdminListProducts).Methods(http.MethodGet)
	admin.HandleFunc("/products", rh.AdminCreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", rh.AdminUpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", rh.AdminArchiveProduct).Methods(http.MethodDelete)

	// Internal routes for the expiration consumer
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/v1/orders/{id}/cancel", rh.InternalCancelOrder).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}
