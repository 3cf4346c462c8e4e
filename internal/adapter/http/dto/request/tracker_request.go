package request

import (
	"encoding/json"
	"strings"
	"time"
)

type ClientCreateRequest struct {
	Name  string `json:"name" example:"Maria Papadopoulou"`
	Email string `json:"email" example:"maria@example.com"`
	Phone string `json:"phone" example:"+30 210 000 0000"`
	Notes string `json:"notes"`
}

// OfferCreateRequest records an offer sent to a client. Currency, status and
// date_offered are optional.
type OfferCreateRequest struct {
	ClientID    string     `json:"client_id" example:"cl_8a1f"`
	Title       string     `json:"title" example:"Facade repaint"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount" example:"1850"`
	Currency    string     `json:"currency" example:"EUR"`
	Status      string     `json:"status" example:"sent"`
	DateOffered *time.Time `json:"date_offered"`
}

// PaymentCreateRequest records a received payment.
//
// `mp_payload` is only used when method is "card": it is forwarded to
// Mercado Pago (amount and reference are filled in by the service).
type PaymentCreateRequest struct {
	ClientID  string          `json:"client_id" example:"cl_8a1f"`
	OfferID   string          `json:"offer_id" example:"of_31c2"`
	Amount    float64         `json:"amount" example:"500"`
	Method    string          `json:"method" example:"bank"`
	PaidAt    *time.Time      `json:"paid_at"`
	Notes     string          `json:"notes"`
	MPPayload json.RawMessage `json:"mp_payload,omitempty" swaggertype:"object"`
}

// ResolveClientID reads the client filter of list endpoints.
func ResolveClientID(query string) string {
	return strings.TrimSpace(query)
}
