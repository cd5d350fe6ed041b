package request

import "github.com/shopspring/decimal"

// Offers accept either a JSON number or a numeric string ("120000.50").

type CreateNegotiationRequest struct {
	RFQID        string           `json:"rfqId" binding:"required"`
	BuyerID      string           `json:"buyerId" binding:"required"`
	SupplierID   string           `json:"supplierId" binding:"required"`
	InitialOffer *decimal.Decimal `json:"initialOffer" binding:"required" swaggertype:"number"`
}

// SendMessageRequest posts a chat line, an offer, or both.
//
// With authentication on, Sender may be omitted and is derived from the token;
// when present it must match the caller's role.
type SendMessageRequest struct {
	Sender  string           `json:"sender,omitempty" binding:"omitempty,oneof=buyer supplier"`
	Message string           `json:"message"`
	Offer   *decimal.Decimal `json:"offer,omitempty" swaggertype:"number"`
}

type AcceptNegotiationRequest struct {
	Offer *decimal.Decimal `json:"offer" binding:"required" swaggertype:"number"`
}

type RejectNegotiationRequest struct {
	Reason string `json:"reason"`
}

type AISuggestionRequest struct {
	Context string `json:"context"`
}
