package acme

import (
	"net/url"
	"strconv"
	"time"

	"github.com/chris/merchant-settlement/pkg/models"
)

// ListQuery filters a paginated listing call. Zero-valued fields are omitted
// from the request. Page defaults to 1.
type ListQuery struct {
	MerchantID string
	Start      time.Time
	End        time.Time
	Page       int
}

func (q ListQuery) values() url.Values {
	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if q.MerchantID != "" {
		params.Set("merchant", q.MerchantID)
	}
	if !q.Start.IsZero() {
		params.Set("created_at__gte", q.Start.Format(time.RFC3339Nano))
	}
	if !q.End.IsZero() {
		params.Set("created_at__lte", q.End.Format(time.RFC3339Nano))
	}
	return params
}

// MerchantPage is one page of the upstream merchant listing. Next is nil on
// the last page.
type MerchantPage struct {
	Results []models.Merchant `json:"results"`
	Next    *string           `json:"next"`
}

// TransactionPage is one page of the upstream transaction listing.
type TransactionPage struct {
	Results []models.Transaction `json:"results"`
	Next    *string              `json:"next"`
}

// OrderPage is one page of the upstream order listing.
type OrderPage struct {
	Results []models.Order `json:"results"`
	Next    *string        `json:"next"`
}
