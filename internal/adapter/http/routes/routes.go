package routes

import (
	"log"

	"jobmarket_billing/internal/adapter/http/handlers"
	"jobmarket_billing/internal/adapter/http/middleware"
	"jobmarket_billing/internal/adapter/persistence/repository"
	"jobmarket_billing/internal/adapter/persistence/session"
	"jobmarket_billing/internal/infrastructure/config"
	"jobmarket_billing/internal/infrastructure/database"
	"jobmarket_billing/internal/infrastructure/events"
	"jobmarket_billing/internal/infrastructure/payments"
	"jobmarket_billing/internal/usecase"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	feeRepo := repository.NewPlatformFeeDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)

	policy := usecase.FeePolicy{FreeJobPosts: cfg.FreeJobPosts, FeePercent: cfg.FeePercent}
	feeUseCase := usecase.NewPlatformFeeUseCase(feeRepo, policy)
	eligibilityUseCase := usecase.NewEligibilityUseCase(jobRepo, feeRepo, policy)
	jobUseCase := usecase.NewJobPostingUseCase(jobRepo, eligibilityUseCase, feeUseCase)

	gateway := newPaymentGateway(cfg)
	sessions := newSessionStore(cfg)
	publisher := newEventPublisher(cfg)

	initiationUseCase := usecase.NewPaymentInitiationUseCase(feeRepo, sessions, gateway, usecase.CheckoutSettings{
		KeyID:          cfg.RazorpayKeyID,
		Currency:       cfg.Currency,
		MerchantName:   cfg.MerchantName,
		ThemeColor:     cfg.ThemeColor,
		PublicBaseURL:  cfg.PublicBaseURL,
		SessionTTL:     cfg.SessionTTL,
		GatewayTimeout: cfg.GatewayTimeout,
		MinAmountMinor: cfg.MinAmountMinor,
	})
	resultUseCase := usecase.NewPaymentResultUseCase(sessions, gateway, feeUseCase, publisher, usecase.SettlementSettings{
		MaxAttempts:    cfg.SettlementMaxAttempts,
		RetryDelay:     cfg.SettlementRetryDelay,
		Parallelism:    cfg.SettlementParallelism,
		LockTTL:        cfg.SessionLockTTL,
		GatewayTimeout: cfg.GatewayTimeout,
	})

	feeHandler := handlers.NewFeeHandler(feeUseCase)
	eligibilityHandler := handlers.NewEligibilityHandler(eligibilityUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	paymentHandler := handlers.NewPaymentHandler(initiationUseCase, resultUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(initiationUseCase, resultUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	// The checkout page and its inbox are opened by the gateway web view without a token.
	addCheckoutRoutes(v1, checkoutHandler)

	private := v1.Group("")
	private.Use(middleware.JWTAuth(cfg.JWTSecret))
	addEmployerRoutes(private, eligibilityHandler, feeHandler, jobHandler)
	addJobRoutes(private, jobHandler)
	addFeeRoutes(private, feeHandler)
	addPaymentRoutes(private, paymentHandler)
}

func newPaymentGateway(cfg config.Config) interfaces.IPaymentGateway {
	switch cfg.GatewayProvider {
	case config.ProviderMercadoPago:
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken, cfg.MercadoPagoNotify, cfg.PublicBaseURL, cfg.GatewayMock)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
			return nil
		}
		return gw
	default:
		gw, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.GatewayMock)
		if err != nil {
			log.Printf("Razorpay gateway not configured: %v", err)
			return nil
		}
		return gw
	}
}

func newSessionStore(cfg config.Config) interfaces.IPaymentSessionStore {
	if cfg.RedisAddr == "" {
		log.Printf("[session] REDIS_ADDR not set; using in-memory sessions (single instance only)")
		return session.NewMemorySessionStore(cfg.Retention)
	}
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.RedisAddr},
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	log.Printf("[session] using redis addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return session.NewRedisSessionStore(client, cfg.Retention)
}

func newEventPublisher(cfg config.Config) interfaces.IEventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.LogPublisher{}
	}
	pub, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaClientID)
	if err != nil {
		log.Printf("Kafka publisher not configured, logging events instead: %v", err)
		return events.LogPublisher{}
	}
	return pub
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
