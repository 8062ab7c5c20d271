package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chris/merchant-settlement/pkg/acme"
	"github.com/chris/merchant-settlement/pkg/models"
	"github.com/chris/merchant-settlement/pkg/settlement"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettlementCalculator is the slice of the settlement service the HTTP layer
// depends on.
type SettlementCalculator interface {
	Calculate(ctx context.Context, merchantID string, date time.Time, timezone string) (*models.SettlementReport, error)
}

// ApiHandler holds the application's dependencies for the HTTP surface.
type ApiHandler struct {
	Settlement SettlementCalculator
	Client     acme.API
	Logger     *zap.Logger
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(svc SettlementCalculator, client acme.API, logger *zap.Logger) *ApiHandler {
	return &ApiHandler{Settlement: svc, Client: client, Logger: logger}
}

// GetSettlement handles GET /settlement. Input errors are rejected before
// any upstream call is made.
func (h *ApiHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	merchantID := q.Get("merchant_id")
	if merchantID == "" {
		writeError(w, http.StatusBadRequest, "merchant_id query parameter is required")
		return
	}
	if _, err := uuid.Parse(merchantID); err != nil {
		writeError(w, http.StatusBadRequest, "merchant_id must be a valid UUID")
		return
	}

	dateStr := q.Get("date")
	if dateStr == "" {
		writeError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	// Compare against the server's current local calendar date.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		writeError(w, http.StatusBadRequest, "date cannot be in the future")
		return
	}

	timezone := q.Get("timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	report, err := h.Settlement.Calculate(r.Context(), merchantID, date, timezone)
	if err != nil {
		if errors.Is(err, settlement.ErrMerchantNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("settlement calculation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to calculate settlement")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ListMerchants handles GET /merchants, returning the first page of the
// upstream merchant listing.
func (h *ApiHandler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	page, _, err := h.Client.GetMerchants(r.Context(), 1)
	if err != nil {
		h.Logger.Error("fetching merchants failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch merchants")
		return
	}

	merchants := page.Results
	if merchants == nil {
		merchants = []models.Merchant{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"merchants": merchants})
}

// GetHealth handles GET /health. It probes the upstream API and reports 503
// when the probe fails.
func (h *ApiHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if _, _, err := h.Client.GetMerchants(r.Context(), 1); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"acme_api": "disconnected",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"acme_api": "connected",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
