package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payform/billing-service/internal/application/services"
	"github.com/payform/billing-service/internal/config"
	"github.com/payform/billing-service/internal/infrastructure/plaid"
	"github.com/payform/billing-service/internal/infrastructure/stripe"
	"github.com/payform/billing-service/internal/interfaces/rest"
	"github.com/payform/billing-service/internal/interfaces/rest/handlers"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting billing service",
		"port", cfg.Server.Port,
		"plaid_env", cfg.Plaid.Environment,
		"log_level", cfg.Logger.Level,
	)

	// External clients are built once and shared read-only for the life of
	// the process.
	processorClient := stripe.NewClient(cfg.Stripe)
	bankLinkClient := plaid.NewClient(cfg.Plaid)

	cardService := services.NewCardService(processorClient)
	achService := services.NewACHService(bankLinkClient, processorClient)

	h := handlers.NewHandlers(cardService, achService, logger)
	router := rest.NewRouter(h, cfg.Server, logger)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
