package advisory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

func sampleNegotiation() entities.Negotiation {
	return entities.Negotiation{
		ID:           "neg-1",
		RFQID:        "RFQ-9",
		BuyerID:      "B1",
		SupplierID:   "S1",
		Status:       entities.NegotiationStatusActive,
		CurrentOffer: d("100000"),
		CounterOffer: dp("120000"),
		Messages: []entities.NegotiationMessage{
			{ID: "m1", Sender: entities.SenderBuyer, Message: "Initial offer", Offer: dp("100000")},
			{ID: "m2", Sender: entities.SenderSupplier, Message: "Too low", Offer: dp("120000")},
			{ID: "m3", Sender: entities.SenderAI, Message: "old advice", IsAISuggestion: true},
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(interfaces.AdvisoryRequest{Negotiation: sampleNegotiation(), Context: "  need delivery in May "})

	assert.Contains(t, p, "RFQ RFQ-9")
	assert.Contains(t, p, "Current buyer offer: 100000")
	assert.Contains(t, p, "Current supplier counter-offer: 120000")
	assert.Contains(t, p, "- buyer: Initial offer (offer 100000)")
	assert.Contains(t, p, "- supplier: Too low (offer 120000)")
	assert.Contains(t, p, "need delivery in May")
	assert.NotContains(t, p, "old advice")
}

func TestBuildPrompt_NoCounterNoHistory(t *testing.T) {
	n := sampleNegotiation()
	n.CounterOffer = nil
	n.Messages = nil

	p := buildPrompt(interfaces.AdvisoryRequest{Negotiation: n})
	assert.Contains(t, p, "counter-offer: none")
	assert.Contains(t, p, "(no messages yet)")
	assert.Contains(t, p, "Requesting party context:\n(none)")
}

func TestBuildPrompt_TruncatesHistory(t *testing.T) {
	n := sampleNegotiation()
	n.Messages = nil
	for i := 0; i < maxPromptMessages+5; i++ {
		n.Messages = append(n.Messages, entities.NegotiationMessage{Sender: entities.SenderBuyer, Message: "msg"})
	}
	p := buildPrompt(interfaces.AdvisoryRequest{Negotiation: n})
	assert.Equal(t, maxPromptMessages, strings.Count(p, "- buyer: msg"))
}

func TestParseAdvice(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		s, err := parseAdvice(`{"suggestion":"Meet at 110000","recommended_offer":110000,"confidence":0.7}`)
		require.NoError(t, err)
		assert.Equal(t, "Meet at 110000", s.Suggestion)
		require.NotNil(t, s.RecommendedOffer)
		assert.True(t, s.RecommendedOffer.Equal(d("110000")))
		assert.InDelta(t, 0.7, s.Confidence, 1e-9)
	})

	t.Run("fenced json and null offer", func(t *testing.T) {
		s, err := parseAdvice("```json\n{\"suggestion\":\"Ask about volume\",\"recommended_offer\":null,\"confidence\":0.4}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Ask about volume", s.Suggestion)
		assert.Nil(t, s.RecommendedOffer)
	})

	t.Run("non positive offer dropped", func(t *testing.T) {
		s, err := parseAdvice(`{"suggestion":"x","recommended_offer":0,"confidence":0.4}`)
		require.NoError(t, err)
		assert.Nil(t, s.RecommendedOffer)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseAdvice("  ")
		assert.ErrorIs(t, err, ErrEmptyAdvice)
	})

	t.Run("blank suggestion", func(t *testing.T) {
		_, err := parseAdvice(`{"suggestion":"  ","confidence":0.4}`)
		assert.ErrorIs(t, err, ErrEmptyAdvice)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseAdvice("I think you should meet halfway")
		assert.Error(t, err)
	})
}

func TestGeminiAdvisor_Suggest(t *testing.T) {
	t.Run("uses model output", func(t *testing.T) {
		var gotPrompt string
		a := &GeminiAdvisor{
			generate: func(_ context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return `{"suggestion":"Offer 110000 with faster payment terms","recommended_offer":110000,"confidence":0.8}`, nil
			},
			model:  DefaultGeminiModel,
			logger: logging.NewNop(),
		}

		s, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: sampleNegotiation()})
		require.NoError(t, err)
		assert.Equal(t, "Offer 110000 with faster payment terms", s.Suggestion)
		assert.Contains(t, gotPrompt, "RFQ-9")
	})

	t.Run("generate error", func(t *testing.T) {
		a := &GeminiAdvisor{
			generate: func(context.Context, string) (string, error) { return "", errors.New("quota") },
			logger:   logging.NewNop(),
		}
		_, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: sampleNegotiation()})
		assert.EqualError(t, err, "quota")
	})

	t.Run("unusable output", func(t *testing.T) {
		a := &GeminiAdvisor{
			generate: func(context.Context, string) (string, error) { return "", nil },
			logger:   logging.NewNop(),
		}
		_, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: sampleNegotiation()})
		assert.ErrorIs(t, err, ErrEmptyAdvice)
	})
}

func TestNewGeminiAdvisor_MissingKey(t *testing.T) {
	_, err := NewGeminiAdvisor(context.Background(), "", "", nil)
	assert.ErrorIs(t, err, ErrMissingGeminiAPIKey)
}

func TestHeuristicAdvisor(t *testing.T) {
	a := NewHeuristicAdvisor()

	t.Run("midpoint", func(t *testing.T) {
		s, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: sampleNegotiation()})
		require.NoError(t, err)
		require.NotNil(t, s.RecommendedOffer)
		assert.True(t, s.RecommendedOffer.Equal(d("110000")), "got %s", s.RecommendedOffer)
		assert.InDelta(t, 0.6, s.Confidence, 1e-9)
		assert.Contains(t, s.Suggestion, "110000.00")
	})

	t.Run("wide gap lowers confidence", func(t *testing.T) {
		n := sampleNegotiation()
		n.CounterOffer = dp("300000")
		s, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: n})
		require.NoError(t, err)
		assert.True(t, s.RecommendedOffer.Equal(d("200000")))
		assert.InDelta(t, 0.4, s.Confidence, 1e-9)
	})

	t.Run("no counter offer", func(t *testing.T) {
		n := sampleNegotiation()
		n.CounterOffer = nil
		n.Messages = n.Messages[:1]
		s, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: n})
		require.NoError(t, err)
		assert.True(t, s.RecommendedOffer.Equal(d("100000")))
		assert.InDelta(t, 0.3, s.Confidence, 1e-9)
	})

	t.Run("offers already equal", func(t *testing.T) {
		n := sampleNegotiation()
		n.CounterOffer = dp("100000.00")
		n.Messages = nil
		s, err := a.Suggest(context.Background(), interfaces.AdvisoryRequest{Negotiation: n})
		require.NoError(t, err)
		assert.InDelta(t, 0.9, s.Confidence, 1e-9)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := a.Suggest(ctx, interfaces.AdvisoryRequest{Negotiation: sampleNegotiation()})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
