package request

import "encoding/json"

// SettlementPaymentCreateRequest is the optional envelope for the settlement route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A bare Mercado Pago payload without the envelope is accepted too.

type SettlementPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
