package entities

import "time"

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientTotals aggregates the offers and payments of one client.
type ClientTotals struct {
	Offered     float64 `json:"offered"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
	Currency    string  `json:"currency"`
}
