package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Provider statuses that settle an invoice.
const (
	ProviderStatusApproved   = "approved"
	ProviderStatusAuthorized = "authorized"
)

// PaymentReceipt is the outcome of charging a work order's invoice total
// through the payment provider.
type PaymentReceipt struct {
	ProviderPaymentID string
	ProviderStatus    string
	ServiceID         int64
	Amount            decimal.Decimal
	Currency          string
	Settled           bool
	PaidAt            time.Time
	ProviderResponse  json.RawMessage
	Payload           map[string]any
}

// Settles reports whether a provider status marks the invoice as paid.
func Settles(providerStatus string) bool {
	return providerStatus == ProviderStatusApproved || providerStatus == ProviderStatusAuthorized
}
