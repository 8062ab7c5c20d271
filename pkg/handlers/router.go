package handlers

import (
	"net/http"

	appmw "github.com/chris/merchant-settlement/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates the Chi router with the API routes mounted.
func NewRouter(h *ApiHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.NewStructuredLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/settlement", h.GetSettlement)
	r.Get("/merchants", h.ListMerchants)
	r.Get("/health", h.GetHealth)

	return r
}
