package routes

import (
	"palettepad/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathOffers   = "/offers"
	PathPayments = "/payments"
)

func addTrackerRoutes(rg *gin.RouterGroup, h *handlers.TrackerHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClient)
		clients.GET("/:id/totals", h.GetClientTotals)
		clients.DELETE("/:id", h.DeleteClient)
	}

	offers := rg.Group(PathOffers)
	{
		offers.GET("", h.ListOffers)
		offers.POST("", h.CreateOffer)
		offers.DELETE("/:id", h.DeleteOffer)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
		payments.DELETE("/:id", h.DeletePayment)
	}
}
