package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/studioops/internal/adapter/http"
	"github.com/iho/studioops/internal/adapter/http/handler"
	postgresRepo "github.com/iho/studioops/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/studioops/internal/adapter/repository/redis"
	"github.com/iho/studioops/internal/adapter/xlsx"
	"github.com/iho/studioops/internal/infrastructure/auth"
	"github.com/iho/studioops/internal/infrastructure/config"
	"github.com/iho/studioops/internal/infrastructure/logger"
	"github.com/iho/studioops/internal/infrastructure/metrics"
	"github.com/iho/studioops/internal/infrastructure/postgres"
	"github.com/iho/studioops/internal/infrastructure/redis"
	"github.com/iho/studioops/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	bookingRepo := postgresRepo.NewBookingRepository(pool)
	orderRepo := postgresRepo.NewProductOrderRepository(pool)
	packageRepo := postgresRepo.NewPackageRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	retrier := postgresRepo.NewRetrier(appLogger)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	bookingUC := usecase.NewBookingUseCase(txManager, bookingRepo, ledgerRepo, idGen)
	orderUC := usecase.NewOrderUseCase(txManager, orderRepo, ledgerRepo, idGen)
	packageUC := usecase.NewPackageUseCase(packageRepo, idGen)
	reconciliationUC := usecase.NewReconciliationUseCase(txManager, bookingRepo, orderRepo, ledgerRepo, retrier)
	reportUC := usecase.NewReportUseCase(bookingRepo, orderRepo, packageRepo, xlsx.NewWriter(), cache, appLogger)

	appMetrics := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUC)
	orderHandler := handler.NewOrderHandler(orderUC)
	packageHandler := handler.NewPackageHandler(packageUC)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationUC, appMetrics)
	reportHandler := handler.NewReportHandler(reportUC, appMetrics)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BookingHandler:        bookingHandler,
		OrderHandler:          orderHandler,
		PackageHandler:        packageHandler,
		ReconciliationHandler: reconciliationHandler,
		ReportHandler:         reportHandler,
		HealthHandler:         healthHandler,
		JWTManager:            jwtManager,
		IdempotencyStore:      idempotencyStore,
		Logger:                appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
