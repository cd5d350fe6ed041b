package response

import (
	"time"

	"bell24h_negotiation/internal/domain/entities"
)

type SettlementPaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	NegotiationID string    `json:"negotiation_id"`
	Amount        Amount    `json:"amount" swaggertype:"number"`
	PaymentDate   time.Time `json:"payment_date"`
	Status        string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromSettlementPayment(p entities.SettlementPayment) SettlementPaymentResponse {
	return SettlementPaymentResponse{
		PaymentID:     p.ID,
		NegotiationID: p.NegotiationID,
		Amount:        Amount(p.Amount),
		PaymentDate:   p.Date,
		Status:        string(p.Status),
		MPPayloadRaw:  string(p.ProviderPayloadRaw),
		MPPayload:     p.ProviderPayload,
	}
}
