package response

import (
	"time"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"
)

type NegotiationMessageResponse struct {
	ID               string    `json:"id"`
	Sender           string    `json:"sender"`
	Message          string    `json:"message"`
	Offer            *Amount   `json:"offer,omitempty" swaggertype:"number"`
	Timestamp        time.Time `json:"timestamp"`
	IsAISuggestion   bool      `json:"isAISuggestion"`
	RecommendedOffer *Amount   `json:"recommendedOffer,omitempty" swaggertype:"number"`
	Confidence       *float64  `json:"confidence,omitempty"`
}

type NegotiationResponse struct {
	ID           string                       `json:"id"`
	RFQID        string                       `json:"rfqId"`
	BuyerID      string                       `json:"buyerId"`
	SupplierID   string                       `json:"supplierId"`
	Status       string                       `json:"status"`
	CurrentOffer Amount                       `json:"currentOffer" swaggertype:"number"`
	CounterOffer *Amount                      `json:"counterOffer,omitempty" swaggertype:"number"`
	AgreedPrice  *Amount                      `json:"agreedPrice,omitempty" swaggertype:"number"`
	Messages     []NegotiationMessageResponse `json:"messages"`
	Version      int64                        `json:"version"`
	CreatedAt    time.Time                    `json:"createdAt"`
	UpdatedAt    time.Time                    `json:"updatedAt"`
}

type NegotiationEnvelope struct {
	Negotiation NegotiationResponse `json:"negotiation"`
}

type NegotiationListEnvelope struct {
	Negotiations []NegotiationResponse `json:"negotiations"`
}

type MessageEnvelope struct {
	Message NegotiationMessageResponse `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SuggestionResponse struct {
	Suggestion       string   `json:"suggestion"`
	RecommendedOffer *Amount `json:"recommendedOffer,omitempty" swaggertype:"number"`
	Confidence       float64 `json:"confidence"`
}

type SuggestionEnvelope struct {
	Suggestion SuggestionResponse `json:"suggestion"`
}

func FromNegotiationMessage(m entities.NegotiationMessage) NegotiationMessageResponse {
	return NegotiationMessageResponse{
		ID:               m.ID,
		Sender:           string(m.Sender),
		Message:          m.Message,
		Offer:            amountPtr(m.Offer),
		Timestamp:        m.Timestamp,
		IsAISuggestion:   m.IsAISuggestion,
		RecommendedOffer: amountPtr(m.RecommendedOffer),
		Confidence:       m.Confidence,
	}
}

func FromNegotiation(n entities.Negotiation) NegotiationResponse {
	msgs := make([]NegotiationMessageResponse, 0, len(n.Messages))
	for _, m := range n.Messages {
		msgs = append(msgs, FromNegotiationMessage(m))
	}
	return NegotiationResponse{
		ID:           n.ID,
		RFQID:        n.RFQID,
		BuyerID:      n.BuyerID,
		SupplierID:   n.SupplierID,
		Status:       string(n.Status),
		CurrentOffer: Amount(n.CurrentOffer),
		CounterOffer: amountPtr(n.CounterOffer),
		AgreedPrice:  amountPtr(n.AgreedPrice),
		Messages:     msgs,
		Version:      n.Version,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func FromNegotiations(list []entities.Negotiation) NegotiationListEnvelope {
	out := NegotiationListEnvelope{Negotiations: make([]NegotiationResponse, 0, len(list))}
	for _, n := range list {
		out.Negotiations = append(out.Negotiations, FromNegotiation(n))
	}
	return out
}

func FromSuggestion(s interfaces.AdvisorySuggestion) SuggestionEnvelope {
	return SuggestionEnvelope{Suggestion: SuggestionResponse{
		Suggestion:       s.Suggestion,
		RecommendedOffer: amountPtr(s.RecommendedOffer),
		Confidence:       s.Confidence,
	}}
}
