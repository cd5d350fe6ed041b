package postgres

import (
	"encoding/json"
	"time"

	"bell24h_negotiation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type negotiationModel struct {
	ID           string              `gorm:"primaryKey;type:varchar(64)"`
	RFQID        string              `gorm:"column:rfq_id;not null;index"`
	BuyerID      string              `gorm:"not null;index"`
	SupplierID   string              `gorm:"not null;index"`
	Status       string              `gorm:"type:varchar(16);not null"`
	CurrentOffer decimal.Decimal     `gorm:"type:numeric(20,4);not null"`
	CounterOffer decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	AgreedPrice  decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	Version      int64               `gorm:"not null"`
	CreatedAt    time.Time           `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime:false"`
	Messages     []messageModel      `gorm:"foreignKey:NegotiationID;constraint:OnDelete:RESTRICT"`
}

func (negotiationModel) TableName() string { return "negotiations" }

// messageModel rows are insert-only. Seq preserves the log order.
type messageModel struct {
	ID               string              `gorm:"primaryKey;type:varchar(32)"`
	NegotiationID    string              `gorm:"not null;uniqueIndex:idx_negotiation_seq,priority:1"`
	Seq              int                 `gorm:"not null;uniqueIndex:idx_negotiation_seq,priority:2"`
	Sender           string              `gorm:"type:varchar(16);not null"`
	Message          string              `gorm:"type:text"`
	Offer            decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	Timestamp        time.Time           `gorm:"not null"`
	IsAISuggestion   bool                `gorm:"column:is_ai_suggestion;not null;default:false"`
	RecommendedOffer decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	Confidence       *float64
}

func (messageModel) TableName() string { return "negotiation_messages" }

type settlementPaymentModel struct {
	ID                 string          `gorm:"primaryKey;type:varchar(64)"`
	NegotiationID      string          `gorm:"not null;index"`
	Amount             decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Date               time.Time       `gorm:"not null"`
	Status             string          `gorm:"type:varchar(16);not null"`
	ProviderPayloadRaw string          `gorm:"type:jsonb"`
}

func (settlementPaymentModel) TableName() string { return "settlement_payments" }

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toMessageModel(negotiationID string, seq int, m entities.NegotiationMessage) messageModel {
	return messageModel{
		ID:               m.ID,
		NegotiationID:    negotiationID,
		Seq:              seq,
		Sender:           string(m.Sender),
		Message:          m.Message,
		Offer:            toNullDecimal(m.Offer),
		Timestamp:        m.Timestamp.UTC(),
		IsAISuggestion:   m.IsAISuggestion,
		RecommendedOffer: toNullDecimal(m.RecommendedOffer),
		Confidence:       m.Confidence,
	}
}

func toNegotiationModel(n entities.Negotiation) negotiationModel {
	msgs := make([]messageModel, 0, len(n.Messages))
	for i, m := range n.Messages {
		msgs = append(msgs, toMessageModel(n.ID, i, m))
	}
	return negotiationModel{
		ID:           n.ID,
		RFQID:        n.RFQID,
		BuyerID:      n.BuyerID,
		SupplierID:   n.SupplierID,
		Status:       string(n.Status),
		CurrentOffer: n.CurrentOffer,
		CounterOffer: toNullDecimal(n.CounterOffer),
		AgreedPrice:  toNullDecimal(n.AgreedPrice),
		Version:      n.Version,
		CreatedAt:    n.CreatedAt.UTC(),
		UpdatedAt:    n.UpdatedAt.UTC(),
		Messages:     msgs,
	}
}

func fromNegotiationModel(m negotiationModel) entities.Negotiation {
	msgs := make([]entities.NegotiationMessage, 0, len(m.Messages))
	for _, mm := range m.Messages {
		msgs = append(msgs, entities.NegotiationMessage{
			ID:               mm.ID,
			Sender:           entities.MessageSender(mm.Sender),
			Message:          mm.Message,
			Offer:            fromNullDecimal(mm.Offer),
			Timestamp:        mm.Timestamp.UTC(),
			IsAISuggestion:   mm.IsAISuggestion,
			RecommendedOffer: fromNullDecimal(mm.RecommendedOffer),
			Confidence:       mm.Confidence,
		})
	}
	return entities.Negotiation{
		ID:           m.ID,
		RFQID:        m.RFQID,
		BuyerID:      m.BuyerID,
		SupplierID:   m.SupplierID,
		Status:       entities.NegotiationStatus(m.Status),
		CurrentOffer: m.CurrentOffer,
		CounterOffer: fromNullDecimal(m.CounterOffer),
		AgreedPrice:  fromNullDecimal(m.AgreedPrice),
		Messages:     msgs,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func toSettlementPaymentModel(p entities.SettlementPayment) settlementPaymentModel {
	raw := string(p.ProviderPayloadRaw)
	if raw == "" {
		raw = "{}"
	}
	return settlementPaymentModel{
		ID:                 p.ID,
		NegotiationID:      p.NegotiationID,
		Amount:             p.Amount,
		Date:               p.Date.UTC(),
		Status:             string(p.Status),
		ProviderPayloadRaw: raw,
	}
}

func fromSettlementPaymentModel(m settlementPaymentModel) entities.SettlementPayment {
	p := entities.SettlementPayment{
		ID:                 m.ID,
		NegotiationID:      m.NegotiationID,
		Amount:             m.Amount,
		Date:               m.Date.UTC(),
		Status:             entities.PaymentStatus(m.Status),
		ProviderPayloadRaw: json.RawMessage(m.ProviderPayloadRaw),
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
		p.ProviderPayload = parsed
	}
	return p
}
