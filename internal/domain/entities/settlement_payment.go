package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement payment outcome reported by the provider.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// SettlementPayment is the payment that settles a completed negotiation at its agreed price.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (negotiation_id-index): negotiation_id
//
// ProviderPayloadRaw keeps the provider response body for audit; ProviderPayload is the
// parsed form, useful for querying/debugging.

type SettlementPayment struct {
	ID            string          `json:"id"`
	NegotiationID string          `json:"negotiation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago status string to PaymentStatus.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}
