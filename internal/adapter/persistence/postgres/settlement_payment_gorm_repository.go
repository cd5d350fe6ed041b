package postgres

import (
	"context"
	"errors"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type SettlementPaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISettlementPaymentRepository = (*SettlementPaymentGormRepository)(nil)

func NewSettlementPaymentGormRepository(db *gorm.DB) *SettlementPaymentGormRepository {
	return &SettlementPaymentGormRepository{db: db}
}

func (r *SettlementPaymentGormRepository) Create(ctx context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
	m := toSettlementPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.SettlementPayment{}, ErrPaymentAlreadyExists
		}
		return entities.SettlementPayment{}, err
	}
	return p, nil
}

func (r *SettlementPaymentGormRepository) GetByID(ctx context.Context, id string) (entities.SettlementPayment, error) {
	var m settlementPaymentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.SettlementPayment{}, nil
	}
	if err != nil {
		return entities.SettlementPayment{}, err
	}
	return fromSettlementPaymentModel(m), nil
}

func (r *SettlementPaymentGormRepository) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.SettlementPayment, error) {
	var models []settlementPaymentModel
	if err := r.db.WithContext(ctx).Where("negotiation_id = ?", negotiationID).Order("date ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.SettlementPayment, 0, len(models))
	for _, m := range models {
		out = append(out, fromSettlementPaymentModel(m))
	}
	return out, nil
}
