package routes

import (
	"palettepad/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEntries = "/entries"

func addEntryRoutes(rg *gin.RouterGroup, h *handlers.EntryHandler) {
	entries := rg.Group(PathEntries)
	{
		entries.GET("", h.ListEntries)
		entries.POST("", h.CreateEntry)
		entries.DELETE("", h.ClearEntries)
		entries.GET("/export.csv", h.ExportEntriesCSV)
		entries.DELETE("/:id", h.DeleteEntry)
	}
}
