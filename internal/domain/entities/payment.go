package entities

import "time"

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodOther PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case "", PaymentMethodCash, PaymentMethodBank, PaymentMethodCard, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is money received from a client, optionally against an offer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Card payments charged through Mercado Pago keep the provider id and status.
type Payment struct {
	ID                string        `json:"id"`
	ClientID          string        `json:"client_id"`
	OfferID           string        `json:"offer_id,omitempty"`
	Amount            float64       `json:"amount"`
	Method            PaymentMethod `json:"method,omitempty"`
	PaidAt            time.Time     `json:"paid_at"`
	Notes             string        `json:"notes,omitempty"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	ProviderStatus    string        `json:"provider_status,omitempty"`
}
