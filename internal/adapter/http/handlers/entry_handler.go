package handlers

import (
	"errors"
	"net/http"

	request "palettepad/internal/adapter/http/dto/request"
	response "palettepad/internal/adapter/http/dto/response"
	"palettepad/internal/usecase"
	"palettepad/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEntryPayload = pkg.NewDomainErrorSimple("INVALID_ENTRY_INPUT", "Invalid entry payload", http.StatusBadRequest)
)

// EntryHandler serves the PalettePad color log.
type EntryHandler struct {
	usecase usecase.IEntryUseCase
}

func NewEntryHandler(uc usecase.IEntryUseCase) *EntryHandler {
	return &EntryHandler{usecase: uc}
}

// ListEntries godoc
// @Summary  List color log entries, newest first
// @Tags     entries
// @Produce  json
// @Success  200 {array}  response.EntryResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEntryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEntries(entries))
}

// CreateEntry godoc
// @Summary  Add a color log entry
// @Tags     entries
// @Accept   json
// @Produce  json
// @Param    payload body     request.EntryCreateRequest true "Entry"
// @Success  201     {object} response.EntryResponse
// @Failure  400     {object} pkg.HTTPError
// @Router   /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var payload request.EntryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEntryPayload)
		return
	}

	entry, err := h.usecase.Add(c.Request.Context(), usecase.NewEntry{
		When:    payload.When,
		Name:    payload.Name,
		Palette: payload.Palette,
		Code:    payload.Code,
	})
	if err != nil {
		writeError(c, mapEntryError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEntry(entry))
}

// DeleteEntry godoc
// @Summary  Delete a color log entry
// @Tags     entries
// @Param    id  path string true "Entry id"
// @Success  204
// @Router   /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEntryError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearEntries godoc
// @Summary  Delete every color log entry
// @Tags     entries
// @Success  204
// @Router   /entries [delete]
func (h *EntryHandler) ClearEntries(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		writeError(c, mapEntryError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportEntriesCSV godoc
// @Summary  Download the color log as CSV
// @Tags     entries
// @Produce  text/csv
// @Success  200 {file}   file
// @Failure  400 {object} pkg.HTTPError
// @Router   /entries/export.csv [get]
func (h *EntryHandler) ExportEntriesCSV(c *gin.Context) {
	data, err := h.usecase.ExportCSV(c.Request.Context())
	if err != nil {
		writeError(c, mapEntryError(err))
		return
	}
	c.Header("Content-Disposition", attachment(usecase.EntriesCSVFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func mapEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEntryID),
		errors.Is(err, usecase.ErrInvalidEntryName),
		errors.Is(err, usecase.ErrInvalidEntryPalette),
		errors.Is(err, usecase.ErrInvalidEntryCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToExport):
		return pkg.NewDomainErrorSimple("NOTHING_TO_EXPORT", "The color log is empty", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
