package memory

import (
	"context"
	"errors"
	"sync"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"
)

var ErrPaymentAlreadyExists = errors.New("payment already exists")

type SettlementPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.SettlementPayment
}

var _ interfaces.ISettlementPaymentRepository = (*SettlementPaymentRepository)(nil)

func NewSettlementPaymentRepository() *SettlementPaymentRepository {
	return &SettlementPaymentRepository{payments: make(map[string]entities.SettlementPayment)}
}

func (r *SettlementPaymentRepository) Create(_ context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[p.ID]; exists {
		return entities.SettlementPayment{}, ErrPaymentAlreadyExists
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *SettlementPaymentRepository) GetByID(_ context.Context, id string) (entities.SettlementPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

func (r *SettlementPaymentRepository) ListByNegotiationID(_ context.Context, negotiationID string) ([]entities.SettlementPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entities.SettlementPayment
	for _, p := range r.payments {
		if p.NegotiationID == negotiationID {
			result = append(result, p)
		}
	}
	return result, nil
}
