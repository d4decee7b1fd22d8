package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/payform/billing-service/internal/config"
	"github.com/payform/billing-service/internal/interfaces/rest/handlers"
	"github.com/payform/billing-service/internal/interfaces/rest/middleware"
)

// NewRouter assembles the front door: the two onboarding endpoints, the SPA,
// and a liveness check. Cross-origin requests are unconditionally permitted.
func NewRouter(h *handlers.Handlers, cfg config.ServerConfig, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Timeout(cfg.WriteTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Billing service is healthy"))
	})

	r.Post("/api/cc", h.CreateCardCustomer)
	r.Post("/api/ach", h.CreateACHCustomer)

	Static(r, cfg.IndexFile, cfg.StaticDir)

	return r
}
