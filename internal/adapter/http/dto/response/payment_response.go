package response

import (
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/invoice"
)

type PaymentResponse struct {
	ServiceID         int64     `json:"service_id"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	ProviderStatus    string    `json:"provider_status"`
	Settled           bool      `json:"settled"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	Date              time.Time `json:"date"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromPaymentReceipt(r entities.PaymentReceipt) PaymentResponse {
	return PaymentResponse{
		ServiceID:         r.ServiceID,
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		Settled:           r.Settled,
		Amount:            invoice.Format(r.Amount),
		Currency:          r.Currency,
		Date:              r.PaidAt,
		MPPayloadRaw:      string(r.ProviderResponse),
		MPPayload:         r.Payload,
	}
}
