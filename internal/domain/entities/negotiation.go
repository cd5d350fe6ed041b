package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegotiationStatus represents the lifecycle of a negotiation.
//
// Transitions are one-directional:
//   - active -> completed (offer accepted)
//   - active -> cancelled (rejected)
//
// Terminal negotiations are kept for audit and never deleted.

type NegotiationStatus string

const (
	NegotiationStatusActive    NegotiationStatus = "active"
	NegotiationStatusCompleted NegotiationStatus = "completed"
	NegotiationStatusCancelled NegotiationStatus = "cancelled"
)

func (s NegotiationStatus) IsTerminal() bool {
	return s == NegotiationStatusCompleted || s == NegotiationStatusCancelled
}

// MessageSender identifies who authored a negotiation message.
type MessageSender string

const (
	SenderBuyer    MessageSender = "buyer"
	SenderSupplier MessageSender = "supplier"
	SenderAI       MessageSender = "ai"
	SenderSystem   MessageSender = "system"
)

// IsParty reports whether the sender is one of the two negotiating parties.
func (s MessageSender) IsParty() bool {
	return s == SenderBuyer || s == SenderSupplier
}

// NegotiationMessage is one entry of the append-only exchange log.
//
// Offer is set when a party puts a price on the table. RecommendedOffer and
// Confidence are only set on advisory messages (IsAISuggestion).
type NegotiationMessage struct {
	ID               string           `json:"id"`
	Sender           MessageSender    `json:"sender"`
	Message          string           `json:"message"`
	Offer            *decimal.Decimal `json:"offer,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
	IsAISuggestion   bool             `json:"is_ai_suggestion"`
	RecommendedOffer *decimal.Decimal `json:"recommended_offer,omitempty"`
	Confidence       *float64         `json:"confidence,omitempty"`
}

// Negotiation is an offer/counter-offer exchange between a buyer and a supplier for an RFQ.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//   - GSI2 (supplier_id-index): supplier_id
//
// Offer semantics:
//   - CurrentOffer is the latest proposal from the buyer (the original offer-maker).
//   - CounterOffer is the latest proposal from the supplier.
//   - AgreedPrice is set once the negotiation is completed.
//
// Version is incremented on every mutation and checked on write.
type Negotiation struct {
	ID           string               `json:"id"`
	RFQID        string               `json:"rfq_id"`
	BuyerID      string               `json:"buyer_id"`
	SupplierID   string               `json:"supplier_id"`
	Status       NegotiationStatus    `json:"status"`
	CurrentOffer decimal.Decimal      `json:"current_offer"`
	CounterOffer *decimal.Decimal     `json:"counter_offer,omitempty"`
	AgreedPrice  *decimal.Decimal     `json:"agreed_price,omitempty"`
	Messages     []NegotiationMessage `json:"messages"`
	Version      int64                `json:"version"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// Money columns are numeric(20,4): four decimal places, sixteen integer digits.
const OfferScale = 4

// MaxOffer is the exclusive upper bound of a storable offer.
var MaxOffer = decimal.New(1, 16)

// ValidOffer reports whether d is a positive amount that storage holds without rounding.
func ValidOffer(d decimal.Decimal) bool {
	return d.IsPositive() && d.LessThan(MaxOffer) && d.Equal(d.Truncate(OfferScale))
}

// PartyRole resolves the role userID plays. A claimed role is honoured only
// when userID actually holds it; with no claim the buyer role wins.
func (n Negotiation) PartyRole(userID string, claimed MessageSender) (MessageSender, bool) {
	isBuyer := userID != "" && n.BuyerID == userID
	isSupplier := userID != "" && n.SupplierID == userID
	switch claimed {
	case SenderBuyer:
		return SenderBuyer, isBuyer
	case SenderSupplier:
		return SenderSupplier, isSupplier
	case "":
		if isBuyer {
			return SenderBuyer, true
		}
		if isSupplier {
			return SenderSupplier, true
		}
	}
	return "", false
}

// HasParticipant reports whether userID is the buyer or the supplier.
func (n Negotiation) HasParticipant(userID string) bool {
	return n.BuyerID == userID || n.SupplierID == userID
}

// LastMessageAt returns the timestamp of the newest message, or the zero time.
func (n Negotiation) LastMessageAt() time.Time {
	if len(n.Messages) == 0 {
		return time.Time{}
	}
	return n.Messages[len(n.Messages)-1].Timestamp
}

// Clone returns a deep copy so callers can mutate it without aliasing the source.
func (n Negotiation) Clone() Negotiation {
	out := n
	out.CounterOffer = cloneDecimal(n.CounterOffer)
	out.AgreedPrice = cloneDecimal(n.AgreedPrice)
	if n.Messages != nil {
		out.Messages = make([]NegotiationMessage, len(n.Messages))
		for i, m := range n.Messages {
			m.Offer = cloneDecimal(m.Offer)
			m.RecommendedOffer = cloneDecimal(m.RecommendedOffer)
			if m.Confidence != nil {
				c := *m.Confidence
				m.Confidence = &c
			}
			out.Messages[i] = m
		}
	}
	return out
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
