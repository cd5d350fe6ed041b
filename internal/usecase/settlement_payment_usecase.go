package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrSettlementPaymentNotFound      = errors.New("settlement payment not found")
	ErrInvalidPaymentID               = fmt.Errorf("%w: invalid payment id", ErrInvalidInput)
	ErrInvalidProviderPayload         = fmt.Errorf("%w: invalid payment provider payload", ErrInvalidInput)
	ErrNegotiationNotCompleted        = errors.New("negotiation not completed")
	ErrNegotiationAlreadySettled      = errors.New("negotiation already has a pending or approved payment")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISettlementPaymentUseCase settles a completed negotiation at its agreed price.

//go:generate mockgen -source=settlement_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_settlement_payment_usecase.go -package=mocks

type ISettlementPaymentUseCase interface {
	Settle(ctx context.Context, negotiationID string, providerPayload json.RawMessage) (entities.SettlementPayment, error)
	GetByID(ctx context.Context, id string) (entities.SettlementPayment, error)
	GetLatestByNegotiationID(ctx context.Context, negotiationID string) (entities.SettlementPayment, error)
}

type SettlementPaymentUseCase struct {
	repo            interfaces.ISettlementPaymentRepository
	negotiationRepo interfaces.INegotiationRepository
	gateway         interfaces.IPaymentGateway
	logger          *zap.Logger
}

var _ ISettlementPaymentUseCase = (*SettlementPaymentUseCase)(nil)

func NewSettlementPaymentUseCase(repo interfaces.ISettlementPaymentRepository, negotiationRepo interfaces.INegotiationRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger) *SettlementPaymentUseCase {
	return &SettlementPaymentUseCase{repo: repo, negotiationRepo: negotiationRepo, gateway: gateway, logger: logging.OrNop(logger)}
}

func (u *SettlementPaymentUseCase) Settle(ctx context.Context, negotiationID string, providerPayload json.RawMessage) (entities.SettlementPayment, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.SettlementPayment{}, ErrInvalidNegotiationID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.SettlementPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.SettlementPayment{}, ErrPaymentGatewayNotConfigured
	}

	n, err := u.negotiationRepo.GetByID(ctx, negotiationID)
	if err != nil {
		u.logger.Error("[payment][usecase] failed loading negotiation", zap.String("negotiation_id", negotiationID), zap.Error(err))
		return entities.SettlementPayment{}, err
	}
	if n.ID == "" {
		return entities.SettlementPayment{}, ErrNegotiationNotFound
	}
	if n.Status != entities.NegotiationStatusCompleted || n.AgreedPrice == nil {
		u.logger.Info("[payment][usecase] negotiation not completed", zap.String("negotiation_id", negotiationID), zap.String("status", string(n.Status)))
		return entities.SettlementPayment{}, ErrNegotiationNotCompleted
	}
	amount := *n.AgreedPrice

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		return entities.SettlementPayment{}, ErrInvalidProviderPayload
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") {
		u.logger.Info("[payment][usecase] missing payment_method_id", zap.String("negotiation_id", negotiationID))
		return entities.SettlementPayment{}, ErrInvalidProviderPayload
	}
	if !hasPayer(reqMap) {
		u.logger.Info("[payment][usecase] missing/invalid payer", zap.String("negotiation_id", negotiationID))
		return entities.SettlementPayment{}, ErrInvalidProviderPayload
	}

	if err := u.ensureNotSettled(ctx, negotiationID); err != nil {
		return entities.SettlementPayment{}, err
	}

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = negotiationID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("RFQ %s settlement", n.RFQID)
	}
	// The source of truth for the amount is the agreed price, never the client payload.
	reqMap["transaction_amount"] = json.Number(amount.String())
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.SettlementPayment{}, err
	}

	u.logger.Info("[payment][usecase] calling payment gateway", zap.String("negotiation_id", negotiationID), zap.String("amount", amount.String()))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.logger.Warn("[payment][usecase] payment gateway failed", zap.String("negotiation_id", negotiationID), zap.Error(err))
		switch {
		case isGatewayCustomerNotFound(err):
			return entities.SettlementPayment{}, ErrPaymentGatewayCustomerNotFound
		case isGatewayUnauthorized(err):
			return entities.SettlementPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.SettlementPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.SettlementPayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("[payment][usecase] provider response unmarshal failed", zap.String("negotiation_id", negotiationID), zap.Error(err))
	}

	p := entities.SettlementPayment{
		ID:                 providerPaymentID,
		NegotiationID:      negotiationID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("[payment][usecase] payment repository create failed", zap.String("negotiation_id", negotiationID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.SettlementPayment{}, err
	}
	u.logger.Info("[payment][usecase] settle success",
		zap.String("negotiation_id", negotiationID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

func (u *SettlementPaymentUseCase) GetByID(ctx context.Context, id string) (entities.SettlementPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SettlementPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SettlementPayment{}, err
	}
	if p.ID == "" {
		return entities.SettlementPayment{}, ErrSettlementPaymentNotFound
	}
	return p, nil
}

func (u *SettlementPaymentUseCase) GetLatestByNegotiationID(ctx context.Context, negotiationID string) (entities.SettlementPayment, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.SettlementPayment{}, ErrInvalidNegotiationID
	}

	payments, err := u.repo.ListByNegotiationID(ctx, negotiationID)
	if err != nil {
		return entities.SettlementPayment{}, err
	}
	if len(payments) == 0 {
		return entities.SettlementPayment{}, ErrSettlementPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

// ensureNotSettled allows a new charge only while every earlier attempt was rejected.
func (u *SettlementPaymentUseCase) ensureNotSettled(ctx context.Context, negotiationID string) error {
	existing, err := u.repo.ListByNegotiationID(ctx, negotiationID)
	if err != nil {
		u.logger.Error("[payment][usecase] failed listing payments", zap.String("negotiation_id", negotiationID), zap.Error(err))
		return err
	}
	for _, p := range existing {
		if p.Status != entities.PaymentStatusRejected {
			u.logger.Info("[payment][usecase] negotiation already settled",
				zap.String("negotiation_id", negotiationID),
				zap.String("payment_id", p.ID),
				zap.String("status", string(p.Status)),
			)
			return ErrNegotiationAlreadySettled
		}
	}
	return nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
