package request

import "encoding/json"

// PaymentCreateRequest wraps a Mercado Pago payment payload.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago
// schemas. A body without the envelope is treated as the payload itself.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
