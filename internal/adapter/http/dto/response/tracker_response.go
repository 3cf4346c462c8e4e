package response

import (
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type OfferResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	DateOffered time.Time `json:"date_offered"`
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	OfferID           string    `json:"offer_id,omitempty"`
	OfferTitle        string    `json:"offer_title,omitempty"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method,omitempty"`
	PaidAt            time.Time `json:"paid_at"`
	Notes             string    `json:"notes,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`
}

type TotalsResponse struct {
	Offered     float64 `json:"offered"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
	Currency    string  `json:"currency"`
}

type ClientDetailResponse struct {
	Client   ClientResponse    `json:"client"`
	Offers   []OfferResponse   `json:"offers"`
	Payments []PaymentResponse `json:"payments"`
	Totals   TotalsResponse    `json:"totals"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse(c)
}

func FromClients(in []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromClient(c))
	}
	return out
}

func FromOffer(o entities.Offer) OfferResponse {
	return OfferResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		Title:       o.Title,
		Description: o.Description,
		Amount:      o.Amount,
		Currency:    o.Currency,
		Status:      string(o.Status),
		DateOffered: o.DateOffered,
	}
}

func FromOffers(in []entities.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(in))
	for _, o := range in {
		out = append(out, FromOffer(o))
	}
	return out
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		ClientID:          p.ClientID,
		OfferID:           p.OfferID,
		Amount:            p.Amount,
		Method:            string(p.Method),
		PaidAt:            p.PaidAt,
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromPayments(in []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPayment(p))
	}
	return out
}

func FromTotals(t entities.ClientTotals) TotalsResponse {
	return TotalsResponse(t)
}

func FromClientDetail(d usecase.ClientDetail) ClientDetailResponse {
	payments := make([]PaymentResponse, 0, len(d.Payments))
	for _, v := range d.Payments {
		p := FromPayment(v.Payment)
		p.OfferTitle = v.OfferTitle
		payments = append(payments, p)
	}
	return ClientDetailResponse{
		Client:   FromClient(d.Client),
		Offers:   FromOffers(d.Offers),
		Payments: payments,
		Totals:   FromTotals(d.Totals),
	}
}
