package handlers

import (
	"errors"
	"net/http"

	request "palettepad/internal/adapter/http/dto/request"
	response "palettepad/internal/adapter/http/dto/response"
	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase"
	"palettepad/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidClientPayload  = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
	errInvalidOfferPayload   = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// TrackerHandler serves clients, offers and payments.
type TrackerHandler struct {
	clients  usecase.IClientUseCase
	offers   usecase.IOfferUseCase
	payments usecase.IPaymentUseCase
}

func NewTrackerHandler(clients usecase.IClientUseCase, offers usecase.IOfferUseCase, payments usecase.IPaymentUseCase) *TrackerHandler {
	return &TrackerHandler{clients: clients, offers: offers, payments: payments}
}

// ListClients godoc
// @Summary  List clients, most recent first
// @Tags     clients
// @Produce  json
// @Success  200 {array} response.ClientResponse
// @Router   /clients [get]
func (h *TrackerHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// CreateClient godoc
// @Summary  Add a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    payload body     request.ClientCreateRequest true "Client"
// @Success  201     {object} response.ClientResponse
// @Failure  400     {object} pkg.HTTPError
// @Router   /clients [post]
func (h *TrackerHandler) CreateClient(c *gin.Context) {
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidClientPayload)
		return
	}
	client, err := h.clients.Add(c.Request.Context(), usecase.NewClient{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
		Notes: payload.Notes,
	})
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// GetClient godoc
// @Summary  Client detail with offers, payments and totals
// @Tags     clients
// @Produce  json
// @Param    id  path     string true "Client id"
// @Success  200 {object} response.ClientDetailResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *TrackerHandler) GetClient(c *gin.Context) {
	detail, err := h.clients.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientDetail(detail))
}

// GetClientTotals godoc
// @Summary  Offered, paid and outstanding amounts of a client
// @Tags     clients
// @Produce  json
// @Param    id  path     string true "Client id"
// @Success  200 {object} response.TotalsResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id}/totals [get]
func (h *TrackerHandler) GetClientTotals(c *gin.Context) {
	totals, err := h.clients.Totals(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// DeleteClient godoc
// @Summary  Delete a client with its offers and payments
// @Tags     clients
// @Param    id path string true "Client id"
// @Success  204
// @Router   /clients/{id} [delete]
func (h *TrackerHandler) DeleteClient(c *gin.Context) {
	if err := h.clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOffers godoc
// @Summary  List offers, newest first
// @Tags     offers
// @Produce  json
// @Param    client_id query string false "Only offers of this client"
// @Success  200 {array} response.OfferResponse
// @Router   /offers [get]
func (h *TrackerHandler) ListOffers(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context(), request.ResolveClientID(c.Query("client_id")))
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

// CreateOffer godoc
// @Summary  Record an offer sent to a client
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    payload body     request.OfferCreateRequest true "Offer"
// @Success  201     {object} response.OfferResponse
// @Failure  400     {object} pkg.HTTPError
// @Router   /offers [post]
func (h *TrackerHandler) CreateOffer(c *gin.Context) {
	var payload request.OfferCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	offer, err := h.offers.Add(c.Request.Context(), usecase.NewOffer{
		ClientID:    payload.ClientID,
		Title:       payload.Title,
		Description: payload.Description,
		Amount:      payload.Amount,
		Currency:    payload.Currency,
		Status:      entities.OfferStatus(payload.Status),
		DateOffered: payload.DateOffered,
	})
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// DeleteOffer godoc
// @Summary  Delete an offer and the payments linked to it
// @Tags     offers
// @Param    id path string true "Offer id"
// @Success  204
// @Router   /offers/{id} [delete]
func (h *TrackerHandler) DeleteOffer(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPayments godoc
// @Summary  List payments, newest first
// @Tags     payments
// @Produce  json
// @Param    client_id query string false "Only payments of this client"
// @Success  200 {array} response.PaymentResponse
// @Router   /payments [get]
func (h *TrackerHandler) ListPayments(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context(), request.ResolveClientID(c.Query("client_id")))
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// CreatePayment godoc
// @Summary  Record a payment; card payments with mp_payload are charged through Mercado Pago
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payload body     request.PaymentCreateRequest true "Payment"
// @Success  201     {object} response.PaymentResponse
// @Failure  400     {object} pkg.HTTPError
// @Failure  502     {object} pkg.HTTPError
// @Router   /payments [post]
func (h *TrackerHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPaymentPayload)
		return
	}
	zap.S().Infof("[payment][handler] create start client_id=%s method=%s payload_len=%d", payload.ClientID, payload.Method, len(payload.MPPayload))

	payment, err := h.payments.Record(c.Request.Context(), usecase.NewPayment{
		ClientID:        payload.ClientID,
		OfferID:         payload.OfferID,
		Amount:          payload.Amount,
		Method:          entities.PaymentMethod(payload.Method),
		PaidAt:          payload.PaidAt,
		Notes:           payload.Notes,
		ProviderPayload: payload.MPPayload,
	})
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// DeletePayment godoc
// @Summary  Delete a payment
// @Tags     payments
// @Param    id path string true "Payment id"
// @Success  204
// @Router   /payments/{id} [delete]
func (h *TrackerHandler) DeletePayment(c *gin.Context) {
	if err := h.payments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapTrackerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidOfferID),
		errors.Is(err, usecase.ErrInvalidOfferTitle),
		errors.Is(err, usecase.ErrInvalidOfferAmount),
		errors.Is(err, usecase.ErrInvalidOfferStatus),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainErrorSimple("INVALID_MP_PAYLOAD", "Invalid Mercado Pago payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_BAD_REQUEST", "Payment rejected by the provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_CUSTOMER_NOT_FOUND", "Payer not found at the provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_INVALID_USERS", "Invalid users involved in the payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment provider credentials rejected", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Card payments are not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
