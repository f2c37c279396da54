package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lumiere-beauty/storefront-api/internal/client"
	"github.com/lumiere-beauty/storefront-api/internal/config"
	"github.com/lumiere-beauty/storefront-api/internal/events"
	"github.com/lumiere-beauty/storefront-api/internal/repository"
	"github.com/lumiere-beauty/storefront-api/internal/server"
	"github.com/lumiere-beauty/storefront-api/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	db := client.InitPostgresClient(cfg.DatabaseURL)
	checkoutClient := client.NewCheckoutClient(&cfg.Checkout)

	producer := events.NewNoopProducer()
	if len(cfg.Kafka.Brokers) > 0 {
		producer = events.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer producer.Close()

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	clientRepo := repository.NewClientRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	catalogService := service.NewCatalogService(productRepo)
	checkoutService := service.NewCheckoutService(db, catalogService, orderRepo, productRepo, checkoutClient, producer, logger)
	paymentService := service.NewPaymentService(db, checkoutClient, orderRepo, productRepo, producer, logger)
	authService := service.NewAuthService(userRepo, &cfg.JWT)
	storeService := service.NewStoreService(productRepo, serviceRepo, staffRepo, clientRepo)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, staffRepo, userRepo)

	deps := &server.Deps{
		BaseURL:         cfg.BaseURL,
		AuthService:     authService,
		StoreService:    storeService,
		BookingService:  bookingService,
		CheckoutService: checkoutService,
		PaymentService:  paymentService,
		UserRepo:        userRepo,
		RateLimit:       cfg.RateLimit,
	}
	if cfg.RedisAddr != "" {
		deps.Redis = client.InitRedisClient(cfg.RedisAddr)
	}

	srv := server.NewServer(deps)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zapCfg zap.Config
	if cfg.Environment.Name == "production" && cfg.Log.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
