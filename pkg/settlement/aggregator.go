package settlement

import (
	"context"
	"errors"

	"github.com/chris/merchant-settlement/pkg/acme"
	"github.com/chris/merchant-settlement/pkg/models"
	"go.uber.org/zap"
)

// fetchAllTransactions pages through every transaction in the window,
// starting at page 1 and following the upstream next pointer. It never
// fails: a page fetch that exhausts its retries records a PageError and
// stops pagination, returning whatever was accumulated so far. Attempt-level
// failure records from pages that eventually succeeded are flattened into
// the same diagnostic list.
func (s *Service) fetchAllTransactions(ctx context.Context, merchantID string, period models.SettlementPeriod) ([]models.Transaction, []models.ErrorDetail) {
	all := []models.Transaction{}
	var diags []models.ErrorDetail

	for page := 1; ; page++ {
		resp, failed, err := s.client.GetTransactions(ctx, acme.ListQuery{
			MerchantID: merchantID,
			Start:      period.Start,
			End:        period.End,
			Page:       page,
		})
		if err != nil {
			s.logger.Error("fetching transactions page failed",
				zap.String("merchant_id", merchantID),
				zap.Int("page", page),
				zap.Error(err))

			var exhausted *acme.ExhaustedError
			if errors.As(err, &exhausted) {
				diags = append(diags, models.PageError{
					Page:    page,
					Error:   "Failed to fetch page",
					Details: exhausted.Attempts,
				})
			} else {
				diags = append(diags, models.PageError{
					Page:    page,
					Error:   "Unknown error",
					Details: err.Error(),
				})
			}
			// Partial results beat total failure.
			return all, diags
		}

		for _, rec := range failed {
			diags = append(diags, rec)
		}
		all = append(all, resp.Results...)

		if resp.Next == nil || *resp.Next == "" {
			return all, diags
		}
	}
}
