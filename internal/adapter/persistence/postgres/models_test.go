package postgres

import (
	"testing"
	"time"

	"bell24h_negotiation/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dp(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestNegotiationModel_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	conf := 0.7
	n := entities.Negotiation{
		ID:           "neg-1",
		RFQID:        "RFQ-1",
		BuyerID:      "B1",
		SupplierID:   "S1",
		Status:       entities.NegotiationStatusCompleted,
		CurrentOffer: decimal.RequireFromString("110000"),
		CounterOffer: dp("110000"),
		AgreedPrice:  dp("110000"),
		Messages: []entities.NegotiationMessage{
			{ID: "01A", Sender: entities.SenderBuyer, Message: "Initial offer", Offer: dp("100000"), Timestamp: ts},
			{ID: "01B", Sender: entities.SenderAI, Message: "Split it", Timestamp: ts.Add(time.Second), IsAISuggestion: true, RecommendedOffer: dp("110000"), Confidence: &conf},
			{ID: "01C", Sender: entities.SenderSystem, Message: "Offer of 110000 accepted", Offer: dp("110000"), Timestamp: ts.Add(2 * time.Second)},
		},
		Version:   4,
		CreatedAt: ts,
		UpdatedAt: ts.Add(2 * time.Second),
	}

	m := toNegotiationModel(n)
	require.Len(t, m.Messages, 3)
	for i, mm := range m.Messages {
		assert.Equal(t, i, mm.Seq)
		assert.Equal(t, "neg-1", mm.NegotiationID)
	}
	assert.False(t, m.Messages[0].RecommendedOffer.Valid)
	assert.True(t, m.AgreedPrice.Valid)

	if diff := cmp.Diff(n, fromNegotiationModel(m)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNegotiationModel_NullOffers(t *testing.T) {
	m := toNegotiationModel(entities.Negotiation{ID: "neg-1", CurrentOffer: decimal.NewFromInt(5)})
	assert.False(t, m.CounterOffer.Valid)
	assert.False(t, m.AgreedPrice.Valid)

	n := fromNegotiationModel(m)
	assert.Nil(t, n.CounterOffer)
	assert.Nil(t, n.AgreedPrice)
	assert.Empty(t, n.Messages)
}

func TestSettlementPaymentModel_RoundTrip(t *testing.T) {
	p := entities.SettlementPayment{
		ID:                 "mp-1",
		NegotiationID:      "neg-1",
		Amount:             decimal.RequireFromString("110000"),
		Date:               time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":"mp-1","status":"approved"}`),
	}

	got := fromSettlementPaymentModel(toSettlementPaymentModel(p))
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, p.Amount.Equal(got.Amount))
	assert.Equal(t, "approved", got.ProviderPayload["status"])
}

func TestSettlementPaymentModel_EmptyPayloadIsValidJSON(t *testing.T) {
	m := toSettlementPaymentModel(entities.SettlementPayment{ID: "mp-2"})
	assert.Equal(t, "{}", m.ProviderPayloadRaw)
}
