package models

import (
	"encoding/json"
	"time"
)

// TransactionType defines the upstream transaction types relevant to settlement.
type TransactionType string

const (
	SALE     TransactionType = "SALE"
	PURCHASE TransactionType = "PURCHASE"
	REFUND   TransactionType = "REFUND"
)

// Merchant represents the internal domain model for a merchant.
// It is fetched from the ACME API and never mutated.
type Merchant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transaction is an upstream transaction record. The ACME API attaches fields
// beyond type and amount, and the report must round-trip them unmodified, so
// the record stays an opaque map. Bodies are decoded with json.Number so an
// amount sent as a bare number keeps its exact textual form.
type Transaction map[string]any

// Type returns the transaction type, or "" when absent.
func (t Transaction) Type() TransactionType {
	s, _ := t["type"].(string)
	return TransactionType(s)
}

// Amount returns the transaction amount as a decimal string, defaulting to "0".
func (t Transaction) Amount() string {
	switch v := t["amount"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return "0"
}

// Order is an upstream order record, opaque for the same reason as Transaction.
type Order map[string]any

// SettlementPeriod is the timezone-aware instant window over which
// transactions are attributed to a settlement date. Start precedes End.
type SettlementPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ErrorKind classifies a single failed upstream attempt.
type ErrorKind string

const (
	ErrorKindHTTP    ErrorKind = "http_error"
	ErrorKindTimeout ErrorKind = "timeout"
	ErrorKindRequest ErrorKind = "request_exception"
)

// FailureRecord is the structured diagnostic for one failed upstream attempt.
// Records are kept even when a later retry succeeds.
type FailureRecord struct {
	Attempt    int       `json:"attempt"`
	StatusCode int       `json:"status_code,omitempty"`
	ErrorKind  ErrorKind `json:"error_kind"`
	Message    string    `json:"message,omitempty"`
}

// PageError records a transaction page fetch that could not be completed,
// truncating pagination. Details holds the attempt-level failure records when
// the fetch exhausted its retries, or a plain message otherwise.
type PageError struct {
	Page    int    `json:"page"`
	Error   string `json:"error"`
	Details any    `json:"details"`
}

// ErrorDetail is implemented by the diagnostic record types that can appear
// in a report's api_errors block.
type ErrorDetail interface {
	errorDetail()
}

func (FailureRecord) errorDetail() {}
func (PageError) errorDetail()     {}

// APIErrors aggregates the diagnostics attached to a best-effort report.
type APIErrors struct {
	TotalErrors  int           `json:"total_errors"`
	ErrorDetails []ErrorDetail `json:"error_details"`
}

// Summary holds the monetary totals of a settlement report. Amounts are exact
// decimal strings.
type Summary struct {
	TotalPurchases   string `json:"total_purchases"`
	TotalRefunds     string `json:"total_refunds"`
	TransactionCount int    `json:"transaction_count"`
	NetSettlement    string `json:"net_settlement"`
}

// SettlementReport is the result of one settlement calculation. It is
// assembled once and immutable after being returned. APIErrors is nil, and
// omitted from the JSON encoding, when no upstream failures occurred.
type SettlementReport struct {
	MerchantID       string           `json:"merchant_id"`
	MerchantName     string           `json:"merchant_name"`
	SettlementDate   string           `json:"settlement_date"`
	SettlementPeriod SettlementPeriod `json:"settlement_period"`
	SettlementAmount string           `json:"settlement_amount"`
	Summary          Summary          `json:"summary"`
	Transactions     []Transaction    `json:"transactions"`
	APIErrors        *APIErrors       `json:"api_errors,omitempty"`
}
