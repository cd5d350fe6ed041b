package handlers

import (
	"errors"
	"io"
	"net/http"

	request "bell24h_negotiation/internal/adapter/http/dto/request"
	response "bell24h_negotiation/internal/adapter/http/dto/response"
	"bell24h_negotiation/internal/adapter/http/middleware"
	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/usecase"
	"bell24h_negotiation/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to access this resource", http.StatusForbidden)
)

// NegotiationHandler exposes the negotiation use case over HTTP.

type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
	logger  *zap.Logger
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase, logger *zap.Logger) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc, logger: logging.OrNop(logger)}
}

// CreateNegotiation godoc
// @Summary  Open a negotiation for an RFQ
// @Tags     negotiation
// @Accept   json
// @Produce  json
// @Param    body body request.CreateNegotiationRequest true "negotiation"
// @Success  201 {object} response.NegotiationEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Router   /negotiation/create [post]
func (h *NegotiationHandler) CreateNegotiation(c *gin.Context) {
	var payload request.CreateNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("[negotiation][handler] invalid create payload", zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}

	if subject, ok := middleware.AuthSubject(c); ok && subject != payload.BuyerID && subject != payload.SupplierID {
		h.logger.Info("[negotiation][handler] create denied", zap.String("subject", subject), zap.String("rfq_id", payload.RFQID))
		writeError(c, errForbidden)
		return
	}

	n, err := h.usecase.Create(c.Request.Context(), payload.RFQID, payload.BuyerID, payload.SupplierID, *payload.InitialOffer)
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	h.logger.Info("[negotiation][handler] created", zap.String("negotiation_id", n.ID), zap.String("rfq_id", n.RFQID))

	c.JSON(http.StatusCreated, response.NegotiationEnvelope{Negotiation: response.FromNegotiation(n)})
}

// GetNegotiation godoc
// @Summary  Get a negotiation with its message log
// @Tags     negotiation
// @Produce  json
// @Param    id path string true "negotiation id"
// @Success  200 {object} response.NegotiationEnvelope
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /negotiation/{id} [get]
func (h *NegotiationHandler) GetNegotiation(c *gin.Context) {
	id := c.Param("id")
	n, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	if subject, ok := middleware.AuthSubject(c); ok && !n.HasParticipant(subject) {
		h.logger.Info("[negotiation][handler] get denied", zap.String("subject", subject), zap.String("negotiation_id", id))
		writeError(c, errForbidden)
		return
	}
	c.JSON(http.StatusOK, response.NegotiationEnvelope{Negotiation: response.FromNegotiation(n)})
}

// ListUserNegotiations godoc
// @Summary  List negotiations where the user is buyer or supplier
// @Tags     negotiation
// @Produce  json
// @Param    userId path string true "user id"
// @Success  200 {object} response.NegotiationListEnvelope
// @Router   /negotiation/user/{userId} [get]
func (h *NegotiationHandler) ListUserNegotiations(c *gin.Context) {
	userID := c.Param("userId")
	// With auth enabled a caller may only list their own negotiations.
	if subject, ok := middleware.AuthSubject(c); ok && subject != userID {
		h.logger.Info("[negotiation][handler] list denied", zap.String("subject", subject), zap.String("user_id", userID))
		writeError(c, errForbidden)
		return
	}

	list, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromNegotiations(list))
}

// SendMessage godoc
// @Summary  Post a message and/or offer
// @Tags     negotiation
// @Accept   json
// @Produce  json
// @Param    id   path string true "negotiation id"
// @Param    body body request.SendMessageRequest true "message"
// @Success  201 {object} response.MessageEnvelope
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /negotiation/{id}/message [post]
func (h *NegotiationHandler) SendMessage(c *gin.Context) {
	id := c.Param("id")
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info("[negotiation][handler] invalid message payload", zap.String("negotiation_id", id), zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}

	sender, ok := h.authorizeParty(c, "message", id, entities.MessageSender(payload.Sender))
	if !ok {
		return
	}

	msg, err := h.usecase.SendMessage(c.Request.Context(), id, sender, payload.Message, payload.Offer)
	if err != nil {
		h.fail(c, "message", id, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageEnvelope{Message: response.FromNegotiationMessage(msg)})
}

// AcceptNegotiation godoc
// @Summary  Accept the offer on the table
// @Tags     negotiation
// @Accept   json
// @Produce  json
// @Param    id   path string true "negotiation id"
// @Param    body body request.AcceptNegotiationRequest true "offer being accepted"
// @Success  200 {object} response.SuccessResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /negotiation/{id}/accept [post]
func (h *NegotiationHandler) AcceptNegotiation(c *gin.Context) {
	id := c.Param("id")
	var payload request.AcceptNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.authorizeParty(c, "accept", id, ""); !ok {
		return
	}

	n, err := h.usecase.Accept(c.Request.Context(), id, *payload.Offer)
	if err != nil {
		h.fail(c, "accept", id, err)
		return
	}
	h.logger.Info("[negotiation][handler] accepted", zap.String("negotiation_id", id), zap.String("agreed_price", payload.Offer.String()), zap.Int64("version", n.Version))
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// RejectNegotiation godoc
// @Summary  Cancel the negotiation
// @Tags     negotiation
// @Accept   json
// @Produce  json
// @Param    id   path string true "negotiation id"
// @Param    body body request.RejectNegotiationRequest false "optional reason"
// @Success  200 {object} response.SuccessResponse
// @Router   /negotiation/{id}/reject [post]
func (h *NegotiationHandler) RejectNegotiation(c *gin.Context) {
	id := c.Param("id")
	var payload request.RejectNegotiationRequest
	if !bindOptionalJSON(c, &payload) {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.authorizeParty(c, "reject", id, ""); !ok {
		return
	}

	if _, err := h.usecase.Reject(c.Request.Context(), id, payload.Reason); err != nil {
		h.fail(c, "reject", id, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// GetAISuggestion godoc
// @Summary  Ask the advisor for a non-binding suggestion
// @Tags     negotiation
// @Accept   json
// @Produce  json
// @Param    id   path string true "negotiation id"
// @Param    body body request.AISuggestionRequest false "context"
// @Success  200 {object} response.SuggestionEnvelope
// @Router   /negotiation/{id}/ai-suggestions [post]
func (h *NegotiationHandler) GetAISuggestion(c *gin.Context) {
	id := c.Param("id")
	var payload request.AISuggestionRequest
	if !bindOptionalJSON(c, &payload) {
		writeError(c, errInvalidRequest)
		return
	}
	if _, ok := h.authorizeParty(c, "ai-suggestion", id, ""); !ok {
		return
	}

	s, err := h.usecase.GetAISuggestion(c.Request.Context(), id, payload.Context)
	if err != nil {
		h.fail(c, "ai-suggestion", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuggestion(s))
}

// authorizeParty checks that the authenticated caller is a party of negotiation id
// and returns the role they act as. Without authentication the claimed role is
// returned untouched. On false the response has already been written.
func (h *NegotiationHandler) authorizeParty(c *gin.Context, action, id string, claimed entities.MessageSender) (entities.MessageSender, bool) {
	subject, ok := middleware.AuthSubject(c)
	if !ok {
		return claimed, true
	}

	n, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, action, id, err)
		return "", false
	}
	role, ok := n.PartyRole(subject, claimed)
	if !ok {
		h.logger.Info("[negotiation][handler] caller is not a party",
			zap.String("action", action),
			zap.String("negotiation_id", id),
			zap.String("subject", subject),
			zap.String("claimed_sender", string(claimed)),
		)
		writeError(c, errForbidden)
		return "", false
	}
	return role, true
}

// RequireParty is route middleware that lets only the negotiation's parties through
// when the request is authenticated.
func (h *NegotiationHandler) RequireParty(c *gin.Context) {
	if _, ok := h.authorizeParty(c, "party-check", c.Param("id"), ""); !ok {
		c.Abort()
		return
	}
	c.Next()
}

func (h *NegotiationHandler) fail(c *gin.Context, action, id string, err error) {
	appErr := mapNegotiationError(err)
	fields := []zap.Field{zap.String("action", action), zap.String("code", appErr.Code), zap.Error(err)}
	if id != "" {
		fields = append(fields, zap.String("negotiation_id", id))
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[negotiation][handler] request failed", fields...)
	} else {
		h.logger.Info("[negotiation][handler] request rejected", fields...)
	}
	writeError(c, appErr)
}

// bindOptionalJSON binds the body when there is one. An empty body is fine.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	return err == nil || errors.Is(err, io.EOF)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapNegotiationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegotiationNotFound):
		return pkg.NewDomainErrorSimple("NEGOTIATION_NOT_FOUND", "Negotiation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNegotiationClosed):
		return pkg.NewDomainErrorSimple("NEGOTIATION_CLOSED", "Negotiation already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferMismatch):
		return pkg.NewDomainErrorSimple("OFFER_MISMATCH", "Your offer no longer matches the latest terms", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("NEGOTIATION_CONFLICT", "Negotiation was updated by another request, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
