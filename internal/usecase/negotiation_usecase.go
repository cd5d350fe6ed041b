package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidNegotiationID   = fmt.Errorf("%w: invalid negotiation id", ErrInvalidInput)
	ErrInvalidRFQID           = fmt.Errorf("%w: invalid rfq id", ErrInvalidInput)
	ErrInvalidBuyerID         = fmt.Errorf("%w: invalid buyer id", ErrInvalidInput)
	ErrInvalidSupplierID      = fmt.Errorf("%w: invalid supplier id", ErrInvalidInput)
	ErrInvalidUserID          = fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	ErrInvalidOffer           = fmt.Errorf("%w: offer must be a positive amount below 10^16 with at most 4 decimal places", ErrInvalidInput)
	ErrInvalidSender          = fmt.Errorf("%w: sender must be buyer or supplier", ErrInvalidInput)
	ErrInvalidMessage         = fmt.Errorf("%w: message text or offer is required", ErrInvalidInput)
	ErrNegotiationNotFound    = errors.New("negotiation not found")
	ErrNegotiationClosed      = errors.New("negotiation already resolved")
	ErrOfferMismatch          = errors.New("offer does not match the latest terms")
	ErrAdvisoryUnavailable    = errors.New("advisory service unavailable")
	ErrConcurrentModification = errors.New("negotiation modified concurrently")
)

const (
	defaultAdvisoryTimeout = 5 * time.Second
	fallbackConfidence     = 0.1
	fallbackSuggestionText = "AI suggestions are temporarily unavailable. Review the latest offer and counter-offer and propose a price both sides can justify."
)

// INegotiationUseCase owns the negotiation state machine:
//   - active --SendMessage--> active
//   - active --Accept(matching offer)--> completed
//   - active --Reject--> cancelled
//
// Terminal negotiations refuse every mutation with ErrNegotiationClosed.

//go:generate mockgen -source=negotiation_usecase.go -destination=../adapter/http/handlers/mocks/mock_negotiation_usecase.go -package=mocks

type INegotiationUseCase interface {
	Create(ctx context.Context, rfqID, buyerID, supplierID string, initialOffer decimal.Decimal) (entities.Negotiation, error)
	GetByID(ctx context.Context, id string) (entities.Negotiation, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Negotiation, error)
	SendMessage(ctx context.Context, id string, sender entities.MessageSender, text string, offer *decimal.Decimal) (entities.NegotiationMessage, error)
	Accept(ctx context.Context, id string, offer decimal.Decimal) (entities.Negotiation, error)
	Reject(ctx context.Context, id string, reason string) (entities.Negotiation, error)
	GetAISuggestion(ctx context.Context, id string, advisoryContext string) (interfaces.AdvisorySuggestion, error)
}

type NegotiationUseCase struct {
	repo            interfaces.INegotiationRepository
	advisor         interfaces.INegotiationAdvisor
	logger          *zap.Logger
	advisoryTimeout time.Duration
	now             func() time.Time
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

// NegotiationOption customizes a NegotiationUseCase.
type NegotiationOption func(*NegotiationUseCase)

// WithAdvisoryTimeout bounds each advisor call. Expiry is handled like any other advisory failure.
func WithAdvisoryTimeout(d time.Duration) NegotiationOption {
	return func(u *NegotiationUseCase) {
		if d > 0 {
			u.advisoryTimeout = d
		}
	}
}

// WithClock replaces time.Now; used by tests.
func WithClock(now func() time.Time) NegotiationOption {
	return func(u *NegotiationUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

func NewNegotiationUseCase(repo interfaces.INegotiationRepository, advisor interfaces.INegotiationAdvisor, logger *zap.Logger, opts ...NegotiationOption) *NegotiationUseCase {
	u := &NegotiationUseCase{
		repo:            repo,
		advisor:         advisor,
		logger:          logging.OrNop(logger),
		advisoryTimeout: defaultAdvisoryTimeout,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *NegotiationUseCase) Create(ctx context.Context, rfqID, buyerID, supplierID string, initialOffer decimal.Decimal) (entities.Negotiation, error) {
	rfqID = strings.TrimSpace(rfqID)
	buyerID = strings.TrimSpace(buyerID)
	supplierID = strings.TrimSpace(supplierID)
	switch {
	case rfqID == "":
		return entities.Negotiation{}, ErrInvalidRFQID
	case buyerID == "":
		return entities.Negotiation{}, ErrInvalidBuyerID
	case supplierID == "":
		return entities.Negotiation{}, ErrInvalidSupplierID
	}
	if !entities.ValidOffer(initialOffer) {
		return entities.Negotiation{}, ErrInvalidOffer
	}

	now := u.now().UTC()
	offer := initialOffer
	n := entities.Negotiation{
		ID:           uuid.NewString(),
		RFQID:        rfqID,
		BuyerID:      buyerID,
		SupplierID:   supplierID,
		Status:       entities.NegotiationStatusActive,
		CurrentOffer: initialOffer,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
		Messages: []entities.NegotiationMessage{{
			ID:        ulid.Make().String(),
			Sender:    entities.SenderBuyer,
			Message:   fmt.Sprintf("Initial offer of %s for RFQ %s", initialOffer.String(), rfqID),
			Offer:     &offer,
			Timestamp: now,
		}},
	}

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		u.logger.Error("[negotiation][usecase] create failed", zap.String("rfq_id", rfqID), zap.Error(err))
		return entities.Negotiation{}, err
	}
	u.logger.Info("[negotiation][usecase] create success",
		zap.String("negotiation_id", created.ID),
		zap.String("rfq_id", rfqID),
		zap.String("initial_offer", initialOffer.String()),
	)
	return created, nil
}

func (u *NegotiationUseCase) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	return u.load(ctx, id)
}

func (u *NegotiationUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Negotiation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	list, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(list, func(a, b entities.Negotiation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return list, nil
}

// SendMessage checks the negotiation state before the payload, so a resolved
// negotiation reports ErrNegotiationClosed whatever the caller sent.
func (u *NegotiationUseCase) SendMessage(ctx context.Context, id string, sender entities.MessageSender, text string, offer *decimal.Decimal) (entities.NegotiationMessage, error) {
	n, err := u.load(ctx, id)
	if err != nil {
		return entities.NegotiationMessage{}, err
	}
	if n.Status.IsTerminal() {
		return entities.NegotiationMessage{}, ErrNegotiationClosed
	}

	if !sender.IsParty() {
		return entities.NegotiationMessage{}, ErrInvalidSender
	}
	if offer != nil && !entities.ValidOffer(*offer) {
		return entities.NegotiationMessage{}, ErrInvalidOffer
	}
	text = strings.TrimSpace(text)
	if text == "" && offer == nil {
		return entities.NegotiationMessage{}, ErrInvalidMessage
	}

	expected := n.Version
	msg := entities.NegotiationMessage{Sender: sender, Message: text}
	if offer != nil {
		o := *offer
		msg.Offer = &o
		if msg.Message == "" {
			msg.Message = fmt.Sprintf("Proposed %s", o.String())
		}
		// The buyer opened the negotiation, so buyer offers move the current
		// offer and supplier offers move the counter-offer.
		if sender == entities.SenderBuyer {
			n.CurrentOffer = o
		} else {
			counter := o
			n.CounterOffer = &counter
		}
	}
	msg = u.appendMessage(&n, msg)

	if _, err := u.save(ctx, n, expected); err != nil {
		return entities.NegotiationMessage{}, err
	}
	u.logger.Info("[negotiation][usecase] message appended",
		zap.String("negotiation_id", n.ID),
		zap.String("sender", string(sender)),
		zap.Bool("has_offer", offer != nil),
		zap.Int("messages", len(n.Messages)),
	)
	return msg, nil
}

// Accept completes the negotiation at offer. Any offer that is not on the table,
// including zero or negative ones, is an ErrOfferMismatch.
func (u *NegotiationUseCase) Accept(ctx context.Context, id string, offer decimal.Decimal) (entities.Negotiation, error) {
	n, err := u.load(ctx, id)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if n.Status.IsTerminal() {
		return entities.Negotiation{}, ErrNegotiationClosed
	}

	// Exact decimal equality; 120000 and 120000.00 match.
	matches := offer.Equal(n.CurrentOffer) || (n.CounterOffer != nil && offer.Equal(*n.CounterOffer))
	if !matches {
		u.logger.Info("[negotiation][usecase] accept offer mismatch",
			zap.String("negotiation_id", n.ID),
			zap.String("offer", offer.String()),
			zap.String("current_offer", n.CurrentOffer.String()),
		)
		return entities.Negotiation{}, ErrOfferMismatch
	}

	expected := n.Version
	agreed := offer
	n.Status = entities.NegotiationStatusCompleted
	n.AgreedPrice = &agreed
	recorded := offer
	u.appendMessage(&n, entities.NegotiationMessage{
		Sender:  entities.SenderSystem,
		Message: fmt.Sprintf("Offer of %s accepted", offer.String()),
		Offer:   &recorded,
	})

	saved, err := u.save(ctx, n, expected)
	if err != nil {
		return entities.Negotiation{}, err
	}
	u.logger.Info("[negotiation][usecase] accept success", zap.String("negotiation_id", n.ID), zap.String("agreed_price", offer.String()))
	return saved, nil
}

func (u *NegotiationUseCase) Reject(ctx context.Context, id string, reason string) (entities.Negotiation, error) {
	n, err := u.load(ctx, id)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if n.Status.IsTerminal() {
		return entities.Negotiation{}, ErrNegotiationClosed
	}

	expected := n.Version
	text := "Negotiation cancelled"
	if reason = strings.TrimSpace(reason); reason != "" {
		text += ": " + reason
	}
	n.Status = entities.NegotiationStatusCancelled
	u.appendMessage(&n, entities.NegotiationMessage{Sender: entities.SenderSystem, Message: text})

	saved, err := u.save(ctx, n, expected)
	if err != nil {
		return entities.Negotiation{}, err
	}
	u.logger.Info("[negotiation][usecase] reject success", zap.String("negotiation_id", n.ID), zap.String("reason", reason))
	return saved, nil
}

// GetAISuggestion asks the advisor for a hint and records it as an ai message.
// Advisor failures and timeouts are absorbed into a low-confidence fallback; only
// lookup and persistence errors reach the caller.
func (u *NegotiationUseCase) GetAISuggestion(ctx context.Context, id string, advisoryContext string) (interfaces.AdvisorySuggestion, error) {
	n, err := u.load(ctx, id)
	if err != nil {
		return interfaces.AdvisorySuggestion{}, err
	}
	if n.Status.IsTerminal() {
		return interfaces.AdvisorySuggestion{}, ErrNegotiationClosed
	}

	suggestion, err := u.suggest(ctx, n.Clone(), strings.TrimSpace(advisoryContext))
	if err != nil {
		u.logger.Warn("[negotiation][usecase] advisory unavailable, using fallback", zap.String("negotiation_id", n.ID), zap.Error(err))
		suggestion = fallbackSuggestion()
	}

	expected := n.Version
	confidence := suggestion.Confidence
	msg := entities.NegotiationMessage{
		Sender:         entities.SenderAI,
		Message:        suggestion.Suggestion,
		IsAISuggestion: true,
		Confidence:     &confidence,
	}
	if suggestion.RecommendedOffer != nil {
		r := *suggestion.RecommendedOffer
		msg.RecommendedOffer = &r
	}
	u.appendMessage(&n, msg)

	if _, err := u.save(ctx, n, expected); err != nil {
		return interfaces.AdvisorySuggestion{}, err
	}
	return suggestion, nil
}

func (u *NegotiationUseCase) suggest(ctx context.Context, n entities.Negotiation, advisoryContext string) (interfaces.AdvisorySuggestion, error) {
	if u.advisor == nil {
		return interfaces.AdvisorySuggestion{}, ErrAdvisoryUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, u.advisoryTimeout)
	defer cancel()

	type result struct {
		s   interfaces.AdvisorySuggestion
		err error
	}
	done := make(chan result, 1)
	go func() {
		s, err := u.advisor.Suggest(ctx, interfaces.AdvisoryRequest{Negotiation: n, Context: advisoryContext})
		done <- result{s: s, err: err}
	}()

	select {
	case <-ctx.Done():
		return interfaces.AdvisorySuggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return interfaces.AdvisorySuggestion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, r.err)
		}
		return sanitizeSuggestion(r.s)
	}
}

func sanitizeSuggestion(s interfaces.AdvisorySuggestion) (interfaces.AdvisorySuggestion, error) {
	s.Suggestion = strings.TrimSpace(s.Suggestion)
	if s.Suggestion == "" {
		return interfaces.AdvisorySuggestion{}, fmt.Errorf("%w: empty suggestion", ErrAdvisoryUnavailable)
	}
	switch {
	case math.IsNaN(s.Confidence) || s.Confidence < 0:
		s.Confidence = 0
	case s.Confidence > 1:
		s.Confidence = 1
	}
	if s.RecommendedOffer != nil {
		r := s.RecommendedOffer.Round(2)
		s.RecommendedOffer = &r
		if !entities.ValidOffer(r) {
			s.RecommendedOffer = nil
		}
	}
	return s, nil
}

func fallbackSuggestion() interfaces.AdvisorySuggestion {
	return interfaces.AdvisorySuggestion{
		Suggestion: fallbackSuggestionText,
		Confidence: fallbackConfidence,
	}
}

func (u *NegotiationUseCase) load(ctx context.Context, id string) (entities.Negotiation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Negotiation{}, ErrInvalidNegotiationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if n.ID == "" {
		return entities.Negotiation{}, ErrNegotiationNotFound
	}
	return n, nil
}

// appendMessage stamps msg, appends it and bumps the aggregate's version and updatedAt.
// Timestamps never go backwards within a negotiation, even if the wall clock does.
func (u *NegotiationUseCase) appendMessage(n *entities.Negotiation, msg entities.NegotiationMessage) entities.NegotiationMessage {
	ts := u.now().UTC()
	if last := n.LastMessageAt(); ts.Before(last) {
		ts = last
	}
	if ts.Before(n.CreatedAt) {
		ts = n.CreatedAt
	}

	msg.ID = ulid.Make().String()
	msg.Timestamp = ts
	n.Messages = append(n.Messages, msg)
	n.UpdatedAt = ts
	n.Version++
	return msg
}

func (u *NegotiationUseCase) save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	saved, err := u.repo.Update(ctx, n, expectedVersion)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.logger.Warn("[negotiation][usecase] concurrent modification", zap.String("negotiation_id", n.ID), zap.Int64("expected_version", expectedVersion))
			return entities.Negotiation{}, ErrConcurrentModification
		}
		u.logger.Error("[negotiation][usecase] persist failed", zap.String("negotiation_id", n.ID), zap.Error(err))
		return entities.Negotiation{}, err
	}
	return saved, nil
}
