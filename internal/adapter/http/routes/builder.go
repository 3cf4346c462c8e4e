package routes

import (
	"palettepad/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBuilder     = "/builder"
	PathSavedOffers = "/saved-offers"
)

func addBuilderRoutes(rg *gin.RouterGroup, h *handlers.OfferBuilderHandler) {
	builder := rg.Group(PathBuilder)
	{
		builder.GET("/catalog", h.GetCatalog)
		builder.POST("/sessions", h.CreateSession)
		builder.GET("/sessions/:id", h.GetSession)
		builder.DELETE("/sessions/:id", h.DiscardSession)
		builder.PUT("/sessions/:id/header", h.SetHeader)
		builder.PUT("/sessions/:id/vat", h.SetVAT)
		builder.POST("/sessions/:id/parse", h.ParseKeywords)
		builder.POST("/sessions/:id/choices/:choice_id", h.ResolveChoice)
		builder.PATCH("/sessions/:id/lines/:line_id", h.UpdateLine)
		builder.DELETE("/sessions/:id/lines/:line_id", h.RemoveLine)
		builder.POST("/sessions/:id/save", h.SaveSession)
		builder.GET("/sessions/:id/export.docx", h.ExportDocx)
	}

	saved := rg.Group(PathSavedOffers)
	{
		saved.GET("", h.ListSavedOffers)
		saved.PATCH("/:id/accept", h.AcceptSavedOffer)
		saved.DELETE("/:id", h.DeleteSavedOffer)
	}
}
