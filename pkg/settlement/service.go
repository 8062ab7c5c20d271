package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/merchant-settlement/pkg/acme"
	"github.com/chris/merchant-settlement/pkg/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrMerchantNotFound is returned when the merchant lookup fails. It is the
// only upstream failure that aborts a settlement calculation.
var ErrMerchantNotFound = errors.New("merchant not found")

// Service calculates merchant settlements against the ACME Payments API.
type Service struct {
	client acme.API
	logger *zap.Logger
}

// NewService creates a settlement Service.
func NewService(client acme.API, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Calculate computes the settlement report for a merchant on a date.
//
// The merchant lookup is validated first; if it fails the whole calculation
// fails with ErrMerchantNotFound and no transaction fetch is attempted.
// Every other upstream failure degrades to partial results with an attached
// api_errors block, so callers can tell a complete settlement from a
// best-effort one.
func (s *Service) Calculate(ctx context.Context, merchantID string, date time.Time, timezone string) (*models.SettlementReport, error) {
	var diags []models.ErrorDetail

	merchant, failed, err := s.client.GetMerchant(ctx, merchantID)
	if err != nil {
		s.logger.Error("fetching merchant failed",
			zap.String("merchant_id", merchantID),
			zap.Error(err))
		return nil, fmt.Errorf("merchant %s: %w", merchantID, ErrMerchantNotFound)
	}
	for _, rec := range failed {
		diags = append(diags, rec)
	}

	period := s.derivePeriod(date, timezone)

	transactions, txDiags := s.fetchAllTransactions(ctx, merchantID, period)
	diags = append(diags, txDiags...)

	purchases := decimal.Zero
	refunds := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type() {
		case models.SALE, models.PURCHASE:
			purchases = purchases.Add(s.amount(tx))
		case models.REFUND:
			refunds = refunds.Add(s.amount(tx))
		}
	}
	net := purchases.Sub(refunds)

	report := &models.SettlementReport{
		MerchantID:       merchantID,
		MerchantName:     merchant.Name,
		SettlementDate:   date.Format("2006-01-02"),
		SettlementPeriod: period,
		SettlementAmount: renderAmount(net),
		Summary: models.Summary{
			TotalPurchases:   renderAmount(purchases),
			TotalRefunds:     renderAmount(refunds),
			TransactionCount: len(transactions),
			NetSettlement:    renderAmount(net),
		},
		Transactions: transactions,
	}

	if len(diags) > 0 {
		report.APIErrors = &models.APIErrors{
			TotalErrors:  len(diags),
			ErrorDetails: diags,
		}
	}

	return report, nil
}

// renderAmount formats a total at the scale its operands carried. Decimal's
// String trims trailing zeros ("12.60" becomes "12.6") even though arithmetic
// preserves the exponent; the report keeps the full scale.
func renderAmount(d decimal.Decimal) string {
	if d.Exponent() >= 0 {
		return d.String()
	}
	return d.StringFixed(-d.Exponent())
}

// amount parses a transaction amount exactly. An unparseable amount
// contributes zero rather than failing the whole calculation.
func (s *Service) amount(tx models.Transaction) decimal.Decimal {
	d, err := decimal.NewFromString(tx.Amount())
	if err != nil {
		s.logger.Warn("unparseable transaction amount, treating as zero",
			zap.String("amount", tx.Amount()),
			zap.Error(err))
		return decimal.Zero
	}
	return d
}
