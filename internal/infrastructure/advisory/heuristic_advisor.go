package advisory

import (
	"context"
	"fmt"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// HeuristicAdvisor proposes splitting the difference between the latest buyer
// and supplier offers. It needs no external service.
type HeuristicAdvisor struct{}

var _ interfaces.INegotiationAdvisor = HeuristicAdvisor{}

func NewHeuristicAdvisor() HeuristicAdvisor {
	return HeuristicAdvisor{}
}

func (HeuristicAdvisor) Suggest(ctx context.Context, req interfaces.AdvisoryRequest) (interfaces.AdvisorySuggestion, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.AdvisorySuggestion{}, err
	}
	n := req.Negotiation

	buyer := n.CurrentOffer
	if o := lastOffer(n, entities.SenderBuyer); o != nil {
		buyer = *o
	}

	counter := n.CounterOffer
	if counter == nil {
		counter = lastOffer(n, entities.SenderSupplier)
	}
	if counter == nil {
		rec := buyer
		return interfaces.AdvisorySuggestion{
			Suggestion:       fmt.Sprintf("No counter-offer yet. The supplier could respond to the offer of %s with a concrete price.", buyer.StringFixed(2)),
			RecommendedOffer: &rec,
			Confidence:       0.3,
		}, nil
	}

	if counter.Equal(buyer) {
		rec := buyer
		return interfaces.AdvisorySuggestion{
			Suggestion:       fmt.Sprintf("Both sides are at %s. Accepting now closes the deal.", buyer.StringFixed(2)),
			RecommendedOffer: &rec,
			Confidence:       0.9,
		}, nil
	}

	mid := buyer.Add(*counter).Div(decimal.NewFromInt(2)).Round(2)
	gap := buyer.Sub(*counter).Abs()
	confidence := 0.6
	// Wide gaps relative to the price are less likely to close at the midpoint.
	if !mid.IsZero() && gap.Div(mid).GreaterThan(decimal.NewFromFloat(0.25)) {
		confidence = 0.4
	}
	return interfaces.AdvisorySuggestion{
		Suggestion: fmt.Sprintf("The offers are %s apart. Meeting in the middle at %s is a reasonable next step.",
			gap.StringFixed(2), mid.StringFixed(2)),
		RecommendedOffer: &mid,
		Confidence:       confidence,
	}, nil
}
