package entities

import "time"

// SavedOfferStatus is the lifecycle of an offer saved from the builder.
type SavedOfferStatus string

const (
	SavedOfferStatusPending  SavedOfferStatus = "pending"
	SavedOfferStatusAccepted SavedOfferStatus = "accepted"
	SavedOfferStatusRejected SavedOfferStatus = "rejected"
)

// SavedOffer is a frozen snapshot of a builder session.
//
// Lines are an independent copy and Total is the value computed at save time;
// neither is recomputed afterwards.
type SavedOffer struct {
	ID           string           `json:"id"`
	CustomerName string           `json:"customer"`
	ProjectName  string           `json:"project"`
	Note         string           `json:"note"`
	CreatedAt    time.Time        `json:"created_at"`
	Status       SavedOfferStatus `json:"status"`
	Total        float64          `json:"total"`
	Lines        []SelectedLine   `json:"lines"`
}

// Clone returns a deep copy.
func (o SavedOffer) Clone() SavedOffer {
	out := o
	out.Lines = append([]SelectedLine(nil), o.Lines...)
	return out
}
