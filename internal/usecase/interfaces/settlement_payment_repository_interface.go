package interfaces

import (
	"context"

	"bell24h_negotiation/internal/domain/entities"
)

// ISettlementPaymentRepository abstracts persistence for SettlementPayment.

//go:generate mockgen -source=settlement_payment_repository_interface.go -destination=mocks/mock_settlement_payment_repository.go -package=mock_interfaces

type ISettlementPaymentRepository interface {
	Create(ctx context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error)
	GetByID(ctx context.Context, id string) (entities.SettlementPayment, error)
	ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.SettlementPayment, error)
}
