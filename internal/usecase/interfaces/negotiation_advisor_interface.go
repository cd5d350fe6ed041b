package interfaces

import (
	"context"

	"bell24h_negotiation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AdvisoryRequest is what the advisor gets to look at.
type AdvisoryRequest struct {
	Negotiation entities.Negotiation
	Context     string
}

// AdvisorySuggestion is a non-binding hint. Confidence is in [0,1].
type AdvisorySuggestion struct {
	Suggestion       string
	RecommendedOffer *decimal.Decimal
	Confidence       float64
}

// INegotiationAdvisor is the external advisory collaborator (LLM or heuristic).

//go:generate mockgen -source=negotiation_advisor_interface.go -destination=mocks/mock_negotiation_advisor.go -package=mock_interfaces

type INegotiationAdvisor interface {
	Suggest(ctx context.Context, req AdvisoryRequest) (AdvisorySuggestion, error)
}
