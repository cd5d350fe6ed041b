package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bell24h_negotiation/internal/domain/entities"
	mock_interfaces "bell24h_negotiation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const validMPPayload = `{"payment_method_id":"pix","payer":{"email":"buyer@example.com"}}`

func completedNegotiation() entities.Negotiation {
	agreed := dec(95000)
	return entities.Negotiation{
		ID:           "neg-1",
		RFQID:        "RFQ-1",
		BuyerID:      "B1",
		SupplierID:   "S1",
		Status:       entities.NegotiationStatusCompleted,
		CurrentOffer: dec(95000),
		AgreedPrice:  &agreed,
	}
}

func TestSettlementPaymentUseCase_Settle_Validations(t *testing.T) {
	t.Run("empty negotiation id", func(t *testing.T) {
		uc := NewSettlementPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Settle(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidNegotiationID) {
			t.Fatalf("expected ErrInvalidNegotiationID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewSettlementPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Settle(context.Background(), "neg-1", nil)
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected error to wrap ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewSettlementPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewSettlementPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestSettlementPaymentUseCase_Settle_NegotiationChecks(t *testing.T) {
	t.Run("negotiation repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(nil, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(entities.Negotiation{}, errors.New("db"))

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("negotiation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(nil, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(entities.Negotiation{}, nil)

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if !errors.Is(err, ErrNegotiationNotFound) {
			t.Fatalf("expected ErrNegotiationNotFound, got %v", err)
		}
	})

	for _, status := range []entities.NegotiationStatus{entities.NegotiationStatusActive, entities.NegotiationStatusCancelled} {
		t.Run("negotiation "+string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
			negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

			n := completedNegotiation()
			n.Status = status
			n.AgreedPrice = nil
			negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(n, nil)

			_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
			if !errors.Is(err, ErrNegotiationNotCompleted) {
				t.Fatalf("expected ErrNegotiationNotCompleted, got %v", err)
			}
		})
	}

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(nil, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(`{"payer":{"email":"a@b.c"}}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(nil, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})
}

func TestSettlementPaymentUseCase_Settle_Gateway(t *testing.T) {
	t.Run("success uses agreed price and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload is not json: %v", err)
				}
				if m["transaction_amount"] != float64(95000) {
					t.Fatalf("expected transaction_amount=95000, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "neg-1" {
					t.Fatalf("expected external_reference=neg-1, got %v", m["external_reference"])
				}
				if m["description"] != "RFQ RFQ-1 settlement" {
					t.Fatalf("unexpected description %v", m["description"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
				return p, nil
			})

		got, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"},"transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-1" || got.NegotiationID != "neg-1" {
			t.Fatalf("unexpected payment %+v", got)
		}
		if !got.Amount.Equal(dec(95000)) {
			t.Fatalf("expected amount 95000, got %s", got.Amount)
		}
		if got.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
		if got.ProviderPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %+v", got.ProviderPayload)
		}
	})

	gatewayErrors := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		{"customer not found", errors.New(`{"message":"Customer not found","code":2002}`), ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range gatewayErrors {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
			negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

			negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
			repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	for _, status := range []entities.PaymentStatus{entities.PaymentStatusApproved, entities.PaymentStatusPending} {
		t.Run("already settled with "+string(status)+" payment", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
			negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

			negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
			repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return([]entities.SettlementPayment{
				{ID: "mp-0", NegotiationID: "neg-1", Status: entities.PaymentStatusRejected},
				{ID: "mp-1", NegotiationID: "neg-1", Status: status},
			}, nil)

			_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
			if !errors.Is(err, ErrNegotiationAlreadySettled) {
				t.Fatalf("expected ErrNegotiationAlreadySettled, got %v", err)
			}
		})
	}

	t.Run("retry allowed after rejected payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return([]entities.SettlementPayment{
			{ID: "mp-0", NegotiationID: "neg-1", Status: entities.PaymentStatusRejected},
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
				return p, nil
			})

		got, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-1" {
			t.Fatalf("unexpected payment %+v", got)
		}
	})

	t.Run("listing existing payments fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, errors.New("db"))

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("repository create fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		negRepo := mock_interfaces.NewMockINegotiationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementPaymentUseCase(repo, negRepo, gateway, nil)

		negRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(completedNegotiation(), nil)
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "pending", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SettlementPayment{}, errors.New("db"))

		_, err := uc.Settle(context.Background(), "neg-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSettlementPaymentUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewSettlementPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		uc := NewSettlementPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.SettlementPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrSettlementPaymentNotFound) {
			t.Fatalf("expected ErrSettlementPaymentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		uc := NewSettlementPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.SettlementPayment{ID: "p-1"}, nil)

		got, err := uc.GetByID(context.Background(), "p-1")
		if err != nil || got.ID != "p-1" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestSettlementPaymentUseCase_GetLatestByNegotiationID(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		uc := NewSettlementPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)

		_, err := uc.GetLatestByNegotiationID(context.Background(), "neg-1")
		if !errors.Is(err, ErrSettlementPaymentNotFound) {
			t.Fatalf("expected ErrSettlementPaymentNotFound, got %v", err)
		}
	})

	t.Run("picks most recent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		uc := NewSettlementPaymentUseCase(repo, nil, nil, nil)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return([]entities.SettlementPayment{
			{ID: "p-1", Date: base},
			{ID: "p-3", Date: base.Add(2 * time.Hour)},
			{ID: "p-2", Date: base.Add(time.Hour)},
		}, nil)

		got, err := uc.GetLatestByNegotiationID(context.Background(), "neg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "p-3" {
			t.Fatalf("expected p-3, got %s", got.ID)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementPaymentRepository(ctrl)
		uc := NewSettlementPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, errors.New("db"))

		_, err := uc.GetLatestByNegotiationID(context.Background(), "neg-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
