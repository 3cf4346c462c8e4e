package response

import (
	"testing"
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase"
)

func TestFromClientDetail(t *testing.T) {
	now := time.Now().UTC()
	d := usecase.ClientDetail{
		Client: entities.Client{ID: "cl_1", Name: "Maria", CreatedAt: now},
		Offers: []entities.Offer{{ID: "of_1", Title: "Facade", Amount: 100, Currency: "EUR", Status: entities.OfferStatusSent}},
		Payments: []usecase.PaymentView{
			{Payment: entities.Payment{ID: "pay_1", OfferID: "of_1", Amount: 40, Method: entities.PaymentMethodBank}, OfferTitle: "Facade"},
		},
		Totals: entities.ClientTotals{Offered: 100, Paid: 40, Outstanding: 60, Currency: "EUR"},
	}

	res := FromClientDetail(d)
	if res.Client.ID != "cl_1" || !res.Client.CreatedAt.Equal(now) {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
	if len(res.Offers) != 1 || res.Offers[0].Status != "sent" {
		t.Fatalf("unexpected offers: %+v", res.Offers)
	}
	if res.Payments[0].OfferTitle != "Facade" || res.Payments[0].Method != "bank" {
		t.Fatalf("unexpected payments: %+v", res.Payments)
	}
	if res.Totals.Outstanding != 60 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestFromEntries_Empty(t *testing.T) {
	if got := FromEntries(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
