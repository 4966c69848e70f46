package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"dashboard-backend/internal/config"
	"dashboard-backend/internal/db"
	"dashboard-backend/internal/handlers"
	"dashboard-backend/internal/health"
	h "dashboard-backend/internal/http"
	"dashboard-backend/internal/logger"
	"dashboard-backend/internal/middleware"
	"dashboard-backend/internal/repositories"
	"dashboard-backend/internal/services"
)

func main() {
	cfg := config.Load()

	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("logger setup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	// Repositories
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	revenueRepo := repositories.NewRevenueRepository(pool)

	// Services
	dashboardService := services.NewDashboardService(invoiceRepo, customerRepo, revenueRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	customerService := services.NewCustomerService(customerRepo)

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	healthHandler := handlers.NewHealthHandler(health.NewChecker(pool))

	router := h.NewRouter(dashboardHandler, invoiceHandler, customerHandler, healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      middleware.NewCORS(cfg)(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
