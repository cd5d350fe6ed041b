package advisory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrEmptyAdvice = errors.New("advisor returned empty advice")

// maxPromptMessages bounds how much history is sent to the model.
const maxPromptMessages = 20

// adviceResponse is the JSON shape the model is asked to return.
type adviceResponse struct {
	Suggestion       string   `json:"suggestion"`
	RecommendedOffer *float64 `json:"recommended_offer"`
	Confidence       float64  `json:"confidence"`
}

func buildPrompt(req interfaces.AdvisoryRequest) string {
	n := req.Negotiation

	counter := "none"
	if n.CounterOffer != nil {
		counter = n.CounterOffer.String()
	}

	msgs := n.Messages
	if len(msgs) > maxPromptMessages {
		msgs = msgs[len(msgs)-maxPromptMessages:]
	}
	var history strings.Builder
	for _, m := range msgs {
		if m.IsAISuggestion {
			continue
		}
		history.WriteString("- ")
		history.WriteString(string(m.Sender))
		history.WriteString(": ")
		history.WriteString(strings.TrimSpace(m.Message))
		if m.Offer != nil {
			history.WriteString(" (offer ")
			history.WriteString(m.Offer.String())
			history.WriteString(")")
		}
		history.WriteString("\n")
	}
	if history.Len() == 0 {
		history.WriteString("- (no messages yet)\n")
	}

	advisoryContext := strings.TrimSpace(req.Context)
	if advisoryContext == "" {
		advisoryContext = "(none)"
	}

	return fmt.Sprintf(`You are a neutral negotiation advisor on a B2B procurement marketplace.
A buyer and a supplier are negotiating the price of RFQ %s.

Current buyer offer: %s
Current supplier counter-offer: %s

Conversation history:
%s
Requesting party context:
%s

Give one short, practical suggestion that helps the parties converge on a fair price.
Respond in JSON only, with this schema:
{
  "suggestion": "text shown to the user",
  "recommended_offer": 0,
  "confidence": 0.0
}
Use null for recommended_offer when you have no price to recommend. confidence is between 0 and 1.
`, n.RFQID, n.CurrentOffer.String(), counter, history.String(), advisoryContext)
}

// parseAdvice reads the model output. Code fences around the JSON are tolerated.
func parseAdvice(text string) (interfaces.AdvisorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return interfaces.AdvisorySuggestion{}, ErrEmptyAdvice
	}

	var resp adviceResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return interfaces.AdvisorySuggestion{}, fmt.Errorf("parse advice: %w", err)
	}
	if strings.TrimSpace(resp.Suggestion) == "" {
		return interfaces.AdvisorySuggestion{}, ErrEmptyAdvice
	}

	out := interfaces.AdvisorySuggestion{
		Suggestion: strings.TrimSpace(resp.Suggestion),
		Confidence: resp.Confidence,
	}
	if resp.RecommendedOffer != nil && *resp.RecommendedOffer > 0 {
		d := decimal.NewFromFloat(*resp.RecommendedOffer).Round(2)
		out.RecommendedOffer = &d
	}
	return out, nil
}

// lastOffer returns the most recent offer made by sender, if any.
func lastOffer(n entities.Negotiation, sender entities.MessageSender) *decimal.Decimal {
	for i := len(n.Messages) - 1; i >= 0; i-- {
		m := n.Messages[i]
		if m.Sender == sender && m.Offer != nil {
			d := *m.Offer
			return &d
		}
	}
	return nil
}
