package acme

import (
	"context"

	"github.com/chris/merchant-settlement/pkg/models"
)

//go:generate mockery --name API --output mocks --outpkg mocks

// API defines the upstream ACME Payments operations the service depends on.
// Every call returns the failure records accumulated by retries alongside the
// result, so callers can surface partial-failure diagnostics even when the
// call eventually succeeded.
type API interface {
	// GetMerchant fetches merchant details by ID.
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, []models.FailureRecord, error)

	// GetMerchants fetches one page of the merchant listing.
	GetMerchants(ctx context.Context, page int) (*MerchantPage, []models.FailureRecord, error)

	// GetTransactions fetches one page of transactions matching the query.
	GetTransactions(ctx context.Context, q ListQuery) (*TransactionPage, []models.FailureRecord, error)

	// GetOrders fetches one page of orders matching the query.
	GetOrders(ctx context.Context, q ListQuery) (*OrderPage, []models.FailureRecord, error)
}
