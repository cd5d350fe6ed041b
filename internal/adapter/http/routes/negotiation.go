package routes

import (
	"net/http"

	"bell24h_negotiation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNegotiation = "/negotiation"
	PathPing        = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addNegotiationRoutes(rg *gin.RouterGroup, negotiationHandler *handlers.NegotiationHandler, paymentHandler *handlers.SettlementPaymentHandler) {
	negotiation := rg.Group(PathNegotiation)
	{
		negotiation.POST("/create", negotiationHandler.CreateNegotiation)
		negotiation.GET("/user/:userId", negotiationHandler.ListUserNegotiations)
		negotiation.GET("/:id", negotiationHandler.GetNegotiation)
		negotiation.POST("/:id/message", negotiationHandler.SendMessage)
		negotiation.POST("/:id/accept", negotiationHandler.AcceptNegotiation)
		negotiation.POST("/:id/reject", negotiationHandler.RejectNegotiation)
		negotiation.POST("/:id/ai-suggestions", negotiationHandler.GetAISuggestion)

		payment := negotiation.Group("/:id/payment", negotiationHandler.RequireParty)
		payment.POST("", paymentHandler.CreatePayment)
		payment.GET("", paymentHandler.GetPayment)
		payment.GET("/:paymentId", paymentHandler.GetPaymentByID)
	}
}
