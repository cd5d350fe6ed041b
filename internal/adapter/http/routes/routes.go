package routes

import (
	"context"
	"errors"
	"fmt"

	"bell24h_negotiation/internal/adapter/http/handlers"
	"bell24h_negotiation/internal/adapter/http/middleware"
	"bell24h_negotiation/internal/adapter/persistence/memory"
	"bell24h_negotiation/internal/adapter/persistence/postgres"
	"bell24h_negotiation/internal/adapter/persistence/repository"
	"bell24h_negotiation/internal/config"
	"bell24h_negotiation/internal/infrastructure/advisory"
	"bell24h_negotiation/internal/infrastructure/database"
	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/infrastructure/payments"
	"bell24h_negotiation/internal/usecase"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Negotiation *handlers.NegotiationHandler
	Payment     *handlers.SettlementPaymentHandler
}

type stores struct {
	negotiations interfaces.INegotiationRepository
	payments     interfaces.ISettlementPaymentRepository
	close        func() error
}

// Build wires storage, advisor and payment gateway from cfg and returns the
// router plus a cleanup func for the storage connection.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	logger = logging.OrNop(logger)

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := st.close(); err != nil {
			logger.Warn("[routes] closing storage failed", zap.Error(err))
		}
	}

	advisor, err := newAdvisor(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	negotiationUseCase := usecase.NewNegotiationUseCase(st.negotiations, advisor, logger, usecase.WithAdvisoryTimeout(cfg.AdvisoryTimeout))
	paymentUseCase := usecase.NewSettlementPaymentUseCase(st.payments, st.negotiations, newGateway(cfg, logger), logger)

	h := Handlers{
		Negotiation: handlers.NewNegotiationHandler(negotiationUseCase, logger),
		Payment:     handlers.NewSettlementPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, logger),
	}
	return NewRouter(cfg, logger, h), cleanup, nil
}

// NewRouter mounts middlewares, swagger and the /v1 API.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	logger = logging.OrNop(logger)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.JWTSecret != "" {
		api.Use(middleware.JWT(cfg.JWTSecret, logger))
	} else {
		logger.Warn("[routes] JWT_SECRET not set, negotiation routes are unauthenticated")
	}
	addNegotiationRoutes(api, h.Negotiation, h.Payment)

	return router
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (stores, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		logger.Info("[routes] using in-memory storage")
		return stores{
			negotiations: memory.NewNegotiationRepository(),
			payments:     memory.NewSettlementPaymentRepository(),
			close:        func() error { return nil },
		}, nil

	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, cfg, logger)
		if err != nil {
			return stores{}, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return stores{}, fmt.Errorf("postgres handle: %w", err)
		}
		logger.Info("[routes] using postgres storage", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
		return stores{
			negotiations: postgres.NewNegotiationGormRepository(db),
			payments:     postgres.NewSettlementPaymentGormRepository(db),
			close:        sqlDB.Close,
		}, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		logger.Info("[routes] using dynamodb storage",
			zap.String("negotiations_table", cfg.NegotiationsTable),
			zap.String("payments_table", cfg.PaymentsTable),
		)
		return stores{
			negotiations: repository.NewNegotiationDynamoRepository(ddb, cfg.NegotiationsTable),
			payments:     repository.NewSettlementPaymentDynamoRepository(ddb, cfg.PaymentsTable),
			close:        func() error { return nil },
		}, nil
	}
	return stores{}, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
}

func newAdvisor(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.INegotiationAdvisor, error) {
	if cfg.AdvisorBackend == config.AdvisorGemini {
		a, err := advisory.NewGeminiAdvisor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("gemini advisor: %w", err)
		}
		return a, nil
	}
	return advisory.NewHeuristicAdvisor(), nil
}

// newGateway returns nil when the gateway cannot be built; settlement then
// answers 503 instead of the whole service failing to start.
func newGateway(cfg *config.Config, logger *zap.Logger) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		if errors.Is(err, payments.ErrMissingMercadoPagoAccessToken) {
			logger.Warn("[routes] Mercado Pago gateway not configured, settlement disabled")
		} else {
			logger.Error("[routes] Mercado Pago gateway init failed", zap.Error(err))
		}
		return nil
	}
	return gw
}
