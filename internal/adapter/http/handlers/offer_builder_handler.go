package handlers

import (
	"errors"
	"net/http"

	request "palettepad/internal/adapter/http/dto/request"
	response "palettepad/internal/adapter/http/dto/response"
	"palettepad/internal/domain/offerbuilder"
	"palettepad/internal/usecase"
	"palettepad/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBuilderPayload = pkg.NewDomainErrorSimple("INVALID_BUILDER_INPUT", "Invalid offer builder payload", http.StatusBadRequest)

// OfferBuilderHandler serves the catalog, builder sessions and saved offers.
type OfferBuilderHandler struct {
	usecase usecase.IOfferBuilderUseCase
}

func NewOfferBuilderHandler(uc usecase.IOfferBuilderUseCase) *OfferBuilderHandler {
	return &OfferBuilderHandler{usecase: uc}
}

// GetCatalog godoc
// @Summary  Priced catalog of work items
// @Tags     builder
// @Produce  json
// @Success  200 {array} response.CatalogItemResponse
// @Router   /builder/catalog [get]
func (h *OfferBuilderHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Catalog()))
}

// CreateSession godoc
// @Summary  Start an in-progress offer
// @Tags     builder
// @Produce  json
// @Success  201 {object} response.SessionResponse
// @Router   /builder/sessions [post]
func (h *OfferBuilderHandler) CreateSession(c *gin.Context) {
	view, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(view))
}

// GetSession godoc
// @Summary  Session state with totals and preview
// @Tags     builder
// @Produce  json
// @Param    id  path     string true "Session id"
// @Success  200 {object} response.SessionResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /builder/sessions/{id} [get]
func (h *OfferBuilderHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

// DiscardSession godoc
// @Summary  Drop an in-progress offer
// @Tags     builder
// @Param    id path string true "Session id"
// @Success  204
// @Router   /builder/sessions/{id} [delete]
func (h *OfferBuilderHandler) DiscardSession(c *gin.Context) {
	if err := h.usecase.DiscardSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetHeader godoc
// @Summary  Replace customer, project and note
// @Tags     builder
// @Accept   json
// @Produce  json
// @Param    id      path     string                true "Session id"
// @Param    payload body     request.HeaderRequest true "Header"
// @Success  200     {object} response.SessionResponse
// @Router   /builder/sessions/{id}/header [put]
func (h *OfferBuilderHandler) SetHeader(c *gin.Context) {
	var payload request.HeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBuilderPayload)
		return
	}
	view, err := h.usecase.SetHeader(c.Request.Context(), c.Param("id"), offerbuilder.Header{
		Customer: payload.Customer,
		Project:  payload.Project,
		Note:     payload.Note,
	})
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

// SetVAT godoc
// @Summary  Toggle VAT or change its rate
// @Tags     builder
// @Accept   json
// @Produce  json
// @Param    id      path     string             true "Session id"
// @Param    payload body     request.VATRequest true "VAT"
// @Success  200     {object} response.SessionResponse
// @Router   /builder/sessions/{id}/vat [put]
func (h *OfferBuilderHandler) SetVAT(c *gin.Context) {
	var payload request.VATRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBuilderPayload)
		return
	}
	view, err := h.usecase.SetVAT(c.Request.Context(), c.Param("id"), payload.Enabled, payload.Rate)
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

// ParseKeywords godoc
// @Summary  Add work lines from a keyword blob
// @Tags     builder
// @Accept   json
// @Produce  json
// @Param    id      path     string               true "Session id"
// @Param    payload body     request.ParseRequest true "Keywords"
// @Success  200     {object} response.ParseResponse
// @Failure  400     {object} pkg.HTTPError
// @Router   /builder/sessions/{id}/parse [post]
func (h *OfferBuilderHandler) ParseKeywords(c *gin.Context) {
	var payload request.ParseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBuilderPayload)
		return
	}
	result, err := h.usecase.Parse(c.Request.Context(), c.Param("id"), payload.Area, payload.SubArea, payload.Keywords)
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParseResult(result))
}

// ResolveChoice godoc
// @Summary  Answer a pending 2-or-3 coats question
// @Tags     builder
// @Accept   json
// @Produce  json
// @Param    id        path     string                true "Session id"
// @Param    choice_id path     string                true "Choice id"
// @Param    payload   body     request.ChoiceRequest true "Coats"
// @Success  200       {object} response.SessionResponse
// @Router   /builder/sessions/{id}/choices/{choice_id} [post]
func (h *OfferBuilderHandler) ResolveChoice(c *gin.Context) {
	var payload request.ChoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBuilderPayload)
		return
	}
	view, err := h.usecase.ResolveChoice(c.Request.Context(), c.Param("id"), c.Param("choice_id"), payload.Coats)
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

// UpdateLine godoc
// @Summary  Edit quantity or unit price of a line
// @Tags     builder
// @Accept   json
// @Produce  json
// @Param    id      path     string                    true "Session id"
// @Param    line_id path     string                    true "Line id"
// @Param    payload body     request.LineUpdateRequest true "Line update"
// @Success  200     {object} response.LineResponse
// @Router   /builder/sessions/{id}/lines/{line_id} [patch]
func (h *OfferBuilderHandler) UpdateLine(c *gin.Context) {
	var payload request.LineUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBuilderPayload)
		return
	}
	if payload.Empty() {
		writeError(c, mapBuilderError(usecase.ErrEmptyLineUpdate))
		return
	}
	line, err := h.usecase.UpdateLine(c.Request.Context(), c.Param("id"), c.Param("line_id"), usecase.LineUpdate{
		Quantity:  payload.Quantity,
		UnitPrice: payload.UnitPrice,
	})
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLine(line))
}

// RemoveLine godoc
// @Summary  Remove a line from the offer
// @Tags     builder
// @Param    id      path string true "Session id"
// @Param    line_id path string true "Line id"
// @Success  204
// @Router   /builder/sessions/{id}/lines/{line_id} [delete]
func (h *OfferBuilderHandler) RemoveLine(c *gin.Context) {
	if err := h.usecase.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("line_id")); err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveSession godoc
// @Summary  Freeze the session into a pending saved offer
// @Tags     builder
// @Produce  json
// @Param    id  path     string true "Session id"
// @Success  201 {object} response.SavedOfferResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /builder/sessions/{id}/save [post]
func (h *OfferBuilderHandler) SaveSession(c *gin.Context) {
	saved, err := h.usecase.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSavedOffer(saved))
}

// ExportDocx godoc
// @Summary  Download the offer as a Word document
// @Tags     builder
// @Produce  application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param    id  path string true "Session id"
// @Success  200 {file} binary
// @Router   /builder/sessions/{id}/export.docx [get]
func (h *OfferBuilderHandler) ExportDocx(c *gin.Context) {
	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.Header("Content-Disposition", attachment(doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// ListSavedOffers godoc
// @Summary  Saved offers, newest first
// @Tags     saved-offers
// @Produce  json
// @Success  200 {array} response.SavedOfferResponse
// @Router   /saved-offers [get]
func (h *OfferBuilderHandler) ListSavedOffers(c *gin.Context) {
	offers, err := h.usecase.ListSavedOffers(c.Request.Context())
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSavedOffers(offers))
}

// AcceptSavedOffer godoc
// @Summary  Mark a pending saved offer as accepted
// @Tags     saved-offers
// @Produce  json
// @Param    id  path     string true "Saved offer id"
// @Success  200 {object} response.SavedOfferResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /saved-offers/{id}/accept [patch]
func (h *OfferBuilderHandler) AcceptSavedOffer(c *gin.Context) {
	saved, err := h.usecase.AcceptSavedOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSavedOffer(saved))
}

// DeleteSavedOffer godoc
// @Summary  Delete a saved offer
// @Tags     saved-offers
// @Param    id path string true "Saved offer id"
// @Success  204
// @Router   /saved-offers/{id} [delete]
func (h *OfferBuilderHandler) DeleteSavedOffer(c *gin.Context) {
	if err := h.usecase.DeleteSavedOffer(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBuilderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapBuilderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Builder session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSavedOfferNotFound):
		return pkg.NewDomainErrorSimple("SAVED_OFFER_NOT_FOUND", "Saved offer not found", http.StatusNotFound)
	case errors.Is(err, offerbuilder.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line not found", http.StatusNotFound)
	case errors.Is(err, offerbuilder.ErrChoiceNotFound):
		return pkg.NewDomainErrorSimple("CHOICE_NOT_FOUND", "Coat choice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSavedOfferNotPending):
		return pkg.NewDomainErrorSimple("SAVED_OFFER_NOT_PENDING", "Only pending offers can be accepted", http.StatusConflict)
	case errors.Is(err, offerbuilder.ErrCustomerRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_REQUIRED", "Customer name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidSavedOfferID),
		errors.Is(err, usecase.ErrEmptyLineUpdate),
		errors.Is(err, offerbuilder.ErrInvalidNumber),
		errors.Is(err, offerbuilder.ErrInvalidCoats),
		errors.Is(err, offerbuilder.ErrInvalidArea),
		errors.Is(err, offerbuilder.ErrInvalidSubArea),
		errors.Is(err, offerbuilder.ErrInvalidVATRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainError("EXPORT_UNAVAILABLE", "Document export is not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
