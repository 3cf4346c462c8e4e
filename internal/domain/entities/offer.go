package entities

import "time"

// OfferStatus tracks an offer sent to a client.
type OfferStatus string

const (
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusInvoiced OfferStatus = "invoiced"
	OfferStatusPaid     OfferStatus = "paid"
	OfferStatusExpired  OfferStatus = "expired"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusSent, OfferStatusAccepted, OfferStatusRejected,
		OfferStatusInvoiced, OfferStatusPaid, OfferStatusExpired:
		return true
	}
	return false
}

const DefaultCurrency = "EUR"

// Offer is a tracked offer made to a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type Offer struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"client_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
	Status      OfferStatus `json:"status"`
	DateOffered time.Time   `json:"date_offered"`
}
