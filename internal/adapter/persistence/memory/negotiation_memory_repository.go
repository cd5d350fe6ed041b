package memory

import (
	"context"
	"errors"
	"sync"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"
)

var ErrNegotiationAlreadyExists = errors.New("negotiation already exists")

// NegotiationRepository keeps negotiations in process memory. It backs the
// "memory" storage mode and the use case tests; data is lost on restart.
type NegotiationRepository struct {
	mu           sync.RWMutex
	negotiations map[string]entities.Negotiation
}

var _ interfaces.INegotiationRepository = (*NegotiationRepository)(nil)

func NewNegotiationRepository() *NegotiationRepository {
	return &NegotiationRepository{
		negotiations: make(map[string]entities.Negotiation),
	}
}

func (r *NegotiationRepository) Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Negotiation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.negotiations[n.ID]; exists {
		return entities.Negotiation{}, ErrNegotiationAlreadyExists
	}
	r.negotiations[n.ID] = n.Clone()
	return n.Clone(), nil
}

func (r *NegotiationRepository) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Negotiation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.negotiations[id]
	if !ok {
		return entities.Negotiation{}, nil
	}
	return n.Clone(), nil
}

func (r *NegotiationRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Negotiation, 0)
	for _, n := range r.negotiations {
		if n.HasParticipant(userID) {
			result = append(result, n.Clone())
		}
	}
	return result, nil
}

func (r *NegotiationRepository) Update(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Negotiation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.negotiations[n.ID]
	if !ok || stored.Version != expectedVersion {
		return entities.Negotiation{}, interfaces.ErrVersionConflict
	}
	r.negotiations[n.ID] = n.Clone()
	return n.Clone(), nil
}
