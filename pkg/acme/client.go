package acme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chris/merchant-settlement/pkg/config"
	"github.com/chris/merchant-settlement/pkg/models"
	"go.uber.org/zap"
)

// Client talks to the ACME Payments API. It is stateless per call and safe
// for concurrent use; the underlying http.Client pools connections across
// requests.
type Client struct {
	baseURL string
	http    *http.Client
	retries int
	logger  *zap.Logger

	// backoff maps a zero-based attempt index to the wait before the next
	// attempt. Overridable in tests.
	backoff func(attempt int) time.Duration
}

// NewClient creates a Client from configuration. The API can be slow, so the
// per-request timeout defaults to 30s upstream of here.
func NewClient(cfg config.Acme, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		retries: cfg.Retries,
		logger:  logger,
		backoff: defaultBackoff,
	}
}

var _ API = (*Client)(nil)

// defaultBackoff is exponential with uniform jitter: 2^attempt + [0,1) seconds.
func defaultBackoff(attempt int) time.Duration {
	secs := math.Pow(2, float64(attempt)) + rand.Float64()
	return time.Duration(secs * float64(time.Second))
}

// GetMerchant fetches merchant details by ID.
func (c *Client) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, []models.FailureRecord, error) {
	var m models.Merchant
	failed, err := c.get(ctx, fmt.Sprintf("/merchants/%s/", merchantID), nil, &m)
	if err != nil {
		return nil, failed, err
	}
	return &m, failed, nil
}

// GetMerchants fetches one page of the merchant listing.
func (c *Client) GetMerchants(ctx context.Context, page int) (*MerchantPage, []models.FailureRecord, error) {
	var p MerchantPage
	failed, err := c.get(ctx, "/merchants/", ListQuery{Page: page}.values(), &p)
	if err != nil {
		return nil, failed, err
	}
	return &p, failed, nil
}

// GetTransactions fetches one page of transactions matching the query.
func (c *Client) GetTransactions(ctx context.Context, q ListQuery) (*TransactionPage, []models.FailureRecord, error) {
	var p TransactionPage
	failed, err := c.get(ctx, "/transactions/", q.values(), &p)
	if err != nil {
		return nil, failed, err
	}
	return &p, failed, nil
}

// GetOrders fetches one page of orders matching the query.
func (c *Client) GetOrders(ctx context.Context, q ListQuery) (*OrderPage, []models.FailureRecord, error) {
	var p OrderPage
	failed, err := c.get(ctx, "/orders/", q.values(), &p)
	if err != nil {
		return nil, failed, err
	}
	return &p, failed, nil
}

// get issues a GET with retries and decodes the 200 body into out. Failed
// attempts are recorded before the retry decision and returned to the caller
// whether or not the call eventually succeeded. After the attempt budget is
// spent the error is an *ExhaustedError carrying the records.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) ([]models.FailureRecord, error) {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var failed []models.FailureRecord

	for attempt := 1; attempt <= c.retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return failed, fmt.Errorf("building request for %s: %w", endpoint, err)
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			rec := models.FailureRecord{Attempt: attempt, ErrorKind: models.ErrorKindRequest, Message: err.Error()}
			if isTimeout(err) {
				rec.ErrorKind = models.ErrorKindTimeout
				rec.Message = ""
			}
			failed = append(failed, rec)
			c.logger.Warn("acme request failed",
				zap.String("url", u),
				zap.Int("attempt", attempt),
				zap.String("error_kind", string(rec.ErrorKind)),
				zap.Error(err))

		case resp.StatusCode != http.StatusOK:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			failed = append(failed, models.FailureRecord{
				Attempt:    attempt,
				StatusCode: resp.StatusCode,
				ErrorKind:  models.ErrorKindHTTP,
			})
			c.logger.Warn("acme returned error status",
				zap.String("url", u),
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode))

		default:
			dec := json.NewDecoder(resp.Body)
			// Amounts must survive as exact decimal text, never float64.
			dec.UseNumber()
			err := dec.Decode(out)
			resp.Body.Close()
			if err != nil {
				// A 200 with a broken body is not a transient upstream
				// condition; surface it without burning the retry budget.
				return failed, fmt.Errorf("decoding %s response: %w", endpoint, err)
			}
			return failed, nil
		}

		if attempt == c.retries {
			return failed, &ExhaustedError{Endpoint: endpoint, Attempts: failed}
		}
		if err := c.wait(ctx, c.backoff(attempt-1)); err != nil {
			return failed, err
		}
	}

	return failed, &ExhaustedError{Endpoint: endpoint, Attempts: failed}
}

// wait blocks the calling goroutine only, and returns early if the context
// is cancelled.
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
