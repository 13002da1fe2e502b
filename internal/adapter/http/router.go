package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/studioops/internal/adapter/http/handler"
	"github.com/iho/studioops/internal/adapter/http/middleware"
	"github.com/iho/studioops/internal/infrastructure/auth"
	"github.com/iho/studioops/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BookingHandler        *handler.BookingHandler
	OrderHandler          *handler.OrderHandler
	PackageHandler        *handler.PackageHandler
	ReconciliationHandler *handler.ReconciliationHandler
	ReportHandler         *handler.ReportHandler
	HealthHandler         *handler.HealthHandler
	JWTManager            *auth.JWTManager
	IdempotencyStore      usecase.IdempotencyStore
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.JWTManager))

		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Bookings
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", cfg.BookingHandler.Create)
			r.Get("/", cfg.BookingHandler.List)
			r.Get("/{id}", cfg.BookingHandler.Get)
			r.Get("/{id}/finance/draft", cfg.ReconciliationHandler.DraftBookingFinance)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagement)
				r.Put("/{id}/staff", cfg.BookingHandler.AssignStaff)
				r.Put("/{id}/finance", cfg.ReconciliationHandler.SaveBookingFinance)
				r.Delete("/{id}", cfg.BookingHandler.Delete)
			})
		})

		// Product orders
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", cfg.OrderHandler.Create)
			r.Get("/", cfg.OrderHandler.List)
			r.Get("/{id}", cfg.OrderHandler.Get)
			r.Get("/{id}/finance/draft", cfg.ReconciliationHandler.DraftOrderFinance)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagement)
				r.Put("/{id}/staff", cfg.OrderHandler.AssignStaff)
				r.Put("/{id}/finance", cfg.ReconciliationHandler.SaveOrderFinance)
				r.Delete("/{id}", cfg.OrderHandler.Delete)
			})
		})

		// Service packages
		r.Route("/packages", func(r chi.Router) {
			r.Get("/", cfg.PackageHandler.List)
			r.With(middleware.RequireManagement).Post("/", cfg.PackageHandler.Create)
		})

		// Interactive balance validation
		r.Post("/finance/validate", cfg.ReconciliationHandler.ValidateBreakdown)

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.RequireManagement)
			r.Get("/monthly", cfg.ReportHandler.Monthly)
			r.Get("/monthly/export", cfg.ReportHandler.Export)
			r.Get("/salary", cfg.ReportHandler.Salary)
		})
	})

	return r
}
