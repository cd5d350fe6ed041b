package interfaces

import (
	"context"
	"errors"

	"bell24h_negotiation/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored version no longer matches
// the expected one (another request mutated the negotiation first).
var ErrVersionConflict = errors.New("negotiation version conflict")

// INegotiationRepository abstracts persistence for Negotiation aggregates.
//
// Implementations must provide read-your-writes consistency for a single id:
//   - GetByID returns a zero Negotiation (empty ID) when not found
//   - Update persists the whole aggregate only when the stored version equals expectedVersion
//   - Update never drops or reorders messages already persisted

//go:generate mockgen -source=negotiation_repository_interface.go -destination=mocks/mock_negotiation_repository.go -package=mock_interfaces

type INegotiationRepository interface {
	Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error)
	GetByID(ctx context.Context, id string) (entities.Negotiation, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Negotiation, error)
	Update(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error)
}
