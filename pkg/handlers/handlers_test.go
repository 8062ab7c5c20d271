package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/merchant-settlement/pkg/acme"
	"github.com/chris/merchant-settlement/pkg/acme/mocks"
	"github.com/chris/merchant-settlement/pkg/models"
	"github.com/chris/merchant-settlement/pkg/settlement"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// mockCalculator is a hand-rolled testify mock for the SettlementCalculator
// interface.
type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) Calculate(ctx context.Context, merchantID string, date time.Time, timezone string) (*models.SettlementReport, error) {
	ret := m.Called(ctx, merchantID, date, timezone)
	var r0 *models.SettlementReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.SettlementReport)
	}
	return r0, ret.Error(1)
}

func TestGetSettlement(t *testing.T) {
	merchantID := uuid.New().String()
	report := &models.SettlementReport{
		MerchantID:       merchantID,
		MerchantName:     "Test Merchant",
		SettlementDate:   "2024-01-15",
		SettlementAmount: "10.05",
		Summary: models.Summary{
			TotalPurchases:   "10.10",
			TotalRefunds:     "0.05",
			TransactionCount: 2,
			NetSettlement:    "10.05",
		},
		Transactions: []models.Transaction{},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCalc := new(mockCalculator)
		mockCalc.On("Calculate", mock.Anything, merchantID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "UTC").
			Return(report, nil)

		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id="+merchantID+"&date=2024-01-15", nil)
		rr := httptest.NewRecorder()

		// Act
		h.GetSettlement(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var returned models.SettlementReport
		json.Unmarshal(rr.Body.Bytes(), &returned)
		assert.Equal(t, merchantID, returned.MerchantID)
		assert.Equal(t, "10.05", returned.SettlementAmount)
		mockCalc.AssertExpectations(t)
	})

	t.Run("Timezone Passed Through", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		mockCalc.On("Calculate", mock.Anything, merchantID, mock.Anything, "America/New_York").
			Return(report, nil)

		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id="+merchantID+"&date=2024-01-15&timezone=America%2FNew_York", nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockCalc.AssertExpectations(t)
	})

	t.Run("Missing Merchant ID", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?date=2024-01-15", nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "merchant_id")
		mockCalc.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed Merchant ID", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id=not-a-uuid&date=2024-01-15", nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "UUID")
		mockCalc.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Date", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id="+merchantID, nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "date")
	})

	t.Run("Malformed Date", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id="+merchantID+"&date=15-01-2024", nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "YYYY-MM-DD")
	})

	t.Run("Future Date", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/settlement?merchant_id=%s&date=%s", merchantID, future), nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "future")
		mockCalc.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Merchant Not Found", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		mockCalc.On("Calculate", mock.Anything, merchantID, mock.Anything, "UTC").
			Return(nil, fmt.Errorf("merchant %s: %w", merchantID, settlement.ErrMerchantNotFound))

		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id="+merchantID+"&date=2024-01-15", nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "merchant not found")
	})

	t.Run("Internal Failure", func(t *testing.T) {
		mockCalc := new(mockCalculator)
		mockCalc.On("Calculate", mock.Anything, merchantID, mock.Anything, "UTC").
			Return(nil, errors.New("something went wrong"))

		h := NewApiHandler(mockCalc, nil, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/settlement?merchant_id="+merchantID+"&date=2024-01-15", nil)
		rr := httptest.NewRecorder()

		h.GetSettlement(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListMerchants(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAPI := new(mocks.API)
		mockAPI.On("GetMerchants", mock.Anything, 1).Return(&acme.MerchantPage{
			Results: []models.Merchant{
				{ID: "m-1", Name: "A"},
				{ID: "m-2", Name: "B"},
			},
		}, nil, nil)

		h := NewApiHandler(nil, mockAPI, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/merchants", nil)
		rr := httptest.NewRecorder()

		h.ListMerchants(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Merchants []models.Merchant `json:"merchants"`
		}
		json.Unmarshal(rr.Body.Bytes(), &body)
		assert.Len(t, body.Merchants, 2)
		assert.Equal(t, "A", body.Merchants[0].Name)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		mockAPI := new(mocks.API)
		mockAPI.On("GetMerchants", mock.Anything, 1).
			Return(nil, nil, &acme.ExhaustedError{Endpoint: "/merchants/"})

		h := NewApiHandler(nil, mockAPI, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/merchants", nil)
		rr := httptest.NewRecorder()

		h.ListMerchants(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Nil Results Encoded As Empty List", func(t *testing.T) {
		mockAPI := new(mocks.API)
		mockAPI.On("GetMerchants", mock.Anything, 1).Return(&acme.MerchantPage{}, nil, nil)

		h := NewApiHandler(nil, mockAPI, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/merchants", nil)
		rr := httptest.NewRecorder()

		h.ListMerchants(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"merchants":[]`)
	})
}

func TestGetHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mockAPI := new(mocks.API)
		mockAPI.On("GetMerchants", mock.Anything, 1).Return(&acme.MerchantPage{}, nil, nil)

		h := NewApiHandler(nil, mockAPI, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		h.GetHealth(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"healthy"`)
		assert.Contains(t, rr.Body.String(), `"acme_api":"connected"`)
	})

	t.Run("Unhealthy", func(t *testing.T) {
		mockAPI := new(mocks.API)
		mockAPI.On("GetMerchants", mock.Anything, 1).
			Return(nil, nil, &acme.ExhaustedError{Endpoint: "/merchants/"})

		h := NewApiHandler(nil, mockAPI, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		h.GetHealth(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"unhealthy"`)
		assert.Contains(t, rr.Body.String(), `"acme_api":"disconnected"`)
	})
}
