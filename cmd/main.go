package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/tokoapi/storefront/application/cart"
	orderapp "github.com/tokoapi/storefront/application/order"
	paymentapp "github.com/tokoapi/storefront/application/payment"
	productapp "github.com/tokoapi/storefront/application/product"
	reviewapp "github.com/tokoapi/storefront/application/review"
	shippingapp "github.com/tokoapi/storefront/application/shipping"
	userapp "github.com/tokoapi/storefront/application/user"
	"github.com/tokoapi/storefront/cmd/config"
	redisclient "github.com/tokoapi/storefront/cmd/redis"
	_ "github.com/tokoapi/storefront/docs"
	cartRepo "github.com/tokoapi/storefront/repository/cart"
	orderRepo "github.com/tokoapi/storefront/repository/order"
	productRepo "github.com/tokoapi/storefront/repository/product"
	redisRepo "github.com/tokoapi/storefront/repository/redis"
	reviewRepo "github.com/tokoapi/storefront/repository/review"
	transactionRepo "github.com/tokoapi/storefront/repository/transaction"
	txRepo "github.com/tokoapi/storefront/repository/tx"
	userRepo "github.com/tokoapi/storefront/repository/user"
	"github.com/tokoapi/storefront/thirdparty/midtrans"
	"github.com/tokoapi/storefront/thirdparty/rabbitmq"
	"github.com/tokoapi/storefront/thirdparty/rajaongkir"
	"github.com/tokoapi/storefront/transport"
	"github.com/tokoapi/storefront/utils/logger"
	"go.uber.org/zap"
)

// @title STOREFRONT API
// @version 1.0
// @description STOREFRONT API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ for delayed order expiration messages
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start rabbitmq consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	TransactionRepo := transactionRepo.NewTransactionRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize third party clients
	gateway := midtrans.NewClient(cfg)
	shippingClient := rajaongkir.NewClient(cfg)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CartApp := cartapp.NewCartApp(CartRepo, ProductRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, CartRepo, ProductRepo, TransactionRepo, publisher)
	PaymentApp := paymentapp.NewPaymentApp(TxRepo, OrderRepo, TransactionRepo, gateway)
	ReviewApp := reviewapp.NewReviewApp(OrderRepo, ReviewRepo)
	ShippingApp := shippingapp.NewShippingApp(shippingClient)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:     UserApp,
		ProductApp:  ProductApp,
		CartApp:     CartApp,
		OrderApp:    OrderApp,
		PaymentApp:  PaymentApp,
		ReviewApp:   ReviewApp,
		ShippingApp: ShippingApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
