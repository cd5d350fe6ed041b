package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "bell24h_negotiation/internal/adapter/http/dto/response"
	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/usecase"
	"bell24h_negotiation/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettlementPaymentHandler handles payment of a completed negotiation.

type SettlementPaymentHandler struct {
	usecase  usecase.ISettlementPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewSettlementPaymentHandler(uc usecase.ISettlementPaymentUseCase, mockMode bool, logger *zap.Logger) *SettlementPaymentHandler {
	return &SettlementPaymentHandler{usecase: uc, mockMode: mockMode, logger: logging.OrNop(logger)}
}

// CreatePayment godoc
// @Summary  Settle a completed negotiation at its agreed price
// @Tags     payment
// @Accept   json
// @Produce  json
// @Param    id   path string true "negotiation id"
// @Param    body body request.SettlementPaymentCreateRequest false "Mercado Pago payload, wrapped in mp_payload or bare"
// @Success  200 {object} response.SettlementPaymentResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /negotiation/{id}/payment [post]
func (h *SettlementPaymentHandler) CreatePayment(c *gin.Context) {
	negotiationID := c.Param("id")
	h.logger.Info("[payment][handler] create start", zap.String("negotiation_id", negotiationID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("[payment][handler] invalid payload", zap.String("negotiation_id", negotiationID), zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		h.logger.Info("[payment][handler] payload invalid in mock mode; using mock payer", zap.String("negotiation_id", negotiationID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}
	if h.mockMode {
		mpPayload = withMockDefaults(mpPayload)
	}

	created, err := h.usecase.Settle(c.Request.Context(), negotiationID, mpPayload)
	if err != nil {
		appErr := mapSettlementPaymentError(err)
		h.logger.Warn("[payment][handler] create failed", zap.String("negotiation_id", negotiationID), zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}
	h.logger.Info("[payment][handler] create success",
		zap.String("negotiation_id", negotiationID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)

	c.JSON(http.StatusOK, response.FromSettlementPayment(created))
}

// GetPayment godoc
// @Summary  Latest settlement payment of a negotiation
// @Tags     payment
// @Produce  json
// @Param    id path string true "negotiation id"
// @Success  200 {object} response.SettlementPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /negotiation/{id}/payment [get]
func (h *SettlementPaymentHandler) GetPayment(c *gin.Context) {
	negotiationID := c.Param("id")

	latest, err := h.usecase.GetLatestByNegotiationID(c.Request.Context(), negotiationID)
	if err != nil {
		appErr := mapSettlementPaymentError(err)
		h.logger.Info("[payment][handler] get failed", zap.String("negotiation_id", negotiationID), zap.String("code", appErr.Code), zap.Error(err))
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromSettlementPayment(latest))
}

// GetPaymentByID godoc
// @Summary  One settlement payment of a negotiation
// @Tags     payment
// @Produce  json
// @Param    id        path string true "negotiation id"
// @Param    paymentId path string true "payment id"
// @Success  200 {object} response.SettlementPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /negotiation/{id}/payment/{paymentId} [get]
func (h *SettlementPaymentHandler) GetPaymentByID(c *gin.Context) {
	negotiationID := c.Param("id")
	paymentID := c.Param("paymentId")

	p, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err == nil && p.NegotiationID != negotiationID {
		err = usecase.ErrSettlementPaymentNotFound
	}
	if err != nil {
		appErr := mapSettlementPaymentError(err)
		h.logger.Info("[payment][handler] get by id failed",
			zap.String("negotiation_id", negotiationID),
			zap.String("payment_id", paymentID),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromSettlementPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if w := strings.TrimSpace(string(wrapped)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

// withMockDefaults fills the fields the mock gateway flow still validates.
func withMockDefaults(payload json.RawMessage) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil || m == nil {
		m = map[string]any{}
	}
	if _, ok := m["payment_method_id"]; !ok {
		m["payment_method_id"] = "pix"
	}
	if _, ok := m["payer"]; !ok {
		m["payer"] = map[string]any{"email": "mock-payer@bell24h.test"}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return b
}

func mapSettlementPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNegotiationNotCompleted):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_COMPLETED", "Negotiation has no agreed price yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrNegotiationAlreadySettled):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "Negotiation already has a pending or approved payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrSettlementPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
