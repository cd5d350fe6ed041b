package postgres

import (
	"context"
	"errors"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"

	"gorm.io/gorm"
)

var (
	ErrNegotiationAlreadyExists = errors.New("negotiation already exists")
	ErrPaymentAlreadyExists     = errors.New("payment already exists")
)

// Migrate creates or updates the tables used by the gorm repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&negotiationModel{}, &messageModel{}, &settlementPaymentModel{})
}

func orderedMessages(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

// NegotiationGormRepository stores negotiations in Postgres. The message log lives in
// its own table and is only ever inserted into.
type NegotiationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.INegotiationRepository = (*NegotiationGormRepository)(nil)

func NewNegotiationGormRepository(db *gorm.DB) *NegotiationGormRepository {
	return &NegotiationGormRepository{db: db}
}

func (r *NegotiationGormRepository) Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error) {
	m := toNegotiationModel(n)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Negotiation{}, ErrNegotiationAlreadyExists
		}
		return entities.Negotiation{}, err
	}
	return n, nil
}

func (r *NegotiationGormRepository) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	var m negotiationModel
	err := r.db.WithContext(ctx).Preload("Messages", orderedMessages).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Negotiation{}, nil
	}
	if err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationModel(m), nil
}

func (r *NegotiationGormRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Negotiation, error) {
	var models []negotiationModel
	err := r.db.WithContext(ctx).
		Preload("Messages", orderedMessages).
		Where("buyer_id = ? OR supplier_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.Negotiation, 0, len(models))
	for _, m := range models {
		out = append(out, fromNegotiationModel(m))
	}
	return out, nil
}

// Update bumps the negotiation row guarded by version and appends messages that are
// not stored yet, in one transaction.
func (r *NegotiationGormRepository) Update(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	m := toNegotiationModel(n)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&negotiationModel{}).
			Where("id = ? AND version = ?", n.ID, expectedVersion).
			Updates(map[string]interface{}{
				"status":        m.Status,
				"current_offer": m.CurrentOffer,
				"counter_offer": m.CounterOffer,
				"agreed_price":  m.AgreedPrice,
				"version":       m.Version,
				"updated_at":    m.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrVersionConflict
		}

		var stored int64
		if err := tx.Model(&messageModel{}).Where("negotiation_id = ?", n.ID).Count(&stored).Error; err != nil {
			return err
		}
		if stored > int64(len(m.Messages)) {
			return interfaces.ErrVersionConflict
		}
		pending := m.Messages[stored:]
		if len(pending) == 0 {
			return nil
		}
		return tx.Create(&pending).Error
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	return n, nil
}
