package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"palettepad/internal/adapter/http/handlers/mocks"
	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase"

	"go.uber.org/mock/gomock"
)

type trackerMocks struct {
	clients  *mocks.MockIClientUseCase
	offers   *mocks.MockIOfferUseCase
	payments *mocks.MockIPaymentUseCase
	handler  *TrackerHandler
}

func newTrackerMocks(t *testing.T) trackerMocks {
	ctrl := gomock.NewController(t)
	m := trackerMocks{
		clients:  mocks.NewMockIClientUseCase(ctrl),
		offers:   mocks.NewMockIOfferUseCase(ctrl),
		payments: mocks.NewMockIPaymentUseCase(ctrl),
	}
	m.handler = NewTrackerHandler(m.clients, m.offers, m.payments)
	return m
}

func TestTrackerHandler_GetClient(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		m := newTrackerMocks(t)
		r := newTestRouter()
		r.GET("/v1/clients/:id", m.handler.GetClient)

		m.clients.EXPECT().Detail(gomock.Any(), "cl_x").Return(usecase.ClientDetail{}, usecase.ErrClientNotFound)

		w := performRequest(r, http.MethodGet, "/v1/clients/cl_x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("detail with totals", func(t *testing.T) {
		m := newTrackerMocks(t)
		r := newTestRouter()
		r.GET("/v1/clients/:id", m.handler.GetClient)

		day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		m.clients.EXPECT().Detail(gomock.Any(), "cl_1").Return(usecase.ClientDetail{
			Client: entities.Client{ID: "cl_1", Name: "Maria", CreatedAt: day},
			Offers: []entities.Offer{{ID: "of_1", ClientID: "cl_1", Title: "Facade", Amount: 1000, Currency: "EUR", Status: entities.OfferStatusSent, DateOffered: day}},
			Payments: []usecase.PaymentView{
				{Payment: entities.Payment{ID: "pay_1", ClientID: "cl_1", OfferID: "of_1", Amount: 400, PaidAt: day}, OfferTitle: "Facade"},
			},
			Totals: entities.ClientTotals{Offered: 1000, Paid: 400, Outstanding: 600, Currency: "EUR"},
		}, nil)

		w := performRequest(r, http.MethodGet, "/v1/clients/cl_1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Client struct {
				ID string `json:"id"`
			} `json:"client"`
			Payments []struct {
				OfferTitle string `json:"offer_title"`
			} `json:"payments"`
			Totals struct {
				Outstanding float64 `json:"outstanding"`
			} `json:"totals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got.Client.ID != "cl_1" || got.Totals.Outstanding != 600 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if len(got.Payments) != 1 || got.Payments[0].OfferTitle != "Facade" {
			t.Fatalf("unexpected payments: %s", w.Body.String())
		}
	})
}

func TestTrackerHandler_CreateClient(t *testing.T) {
	m := newTrackerMocks(t)
	r := newTestRouter()
	r.POST("/v1/clients", m.handler.CreateClient)

	m.clients.EXPECT().Add(gomock.Any(), usecase.NewClient{Name: " "}).Return(entities.Client{}, usecase.ErrInvalidClientName)

	if w := performRequest(r, http.MethodPost, "/v1/clients", "["); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodPost, "/v1/clients", `{"name":" "}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", w.Code)
	}
}

func TestTrackerHandler_DeleteClient(t *testing.T) {
	m := newTrackerMocks(t)
	r := newTestRouter()
	r.DELETE("/v1/clients/:id", m.handler.DeleteClient)

	m.clients.EXPECT().Delete(gomock.Any(), "cl_1").Return(nil)

	if w := performRequest(r, http.MethodDelete, "/v1/clients/cl_1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestTrackerHandler_ListOffers(t *testing.T) {
	m := newTrackerMocks(t)
	r := newTestRouter()
	r.GET("/v1/offers", m.handler.ListOffers)

	m.offers.EXPECT().List(gomock.Any(), "cl_1").Return([]entities.Offer{{ID: "of_1", ClientID: "cl_1"}}, nil)
	m.offers.EXPECT().List(gomock.Any(), "").Return(nil, nil)

	w := performRequest(r, http.MethodGet, "/v1/offers?client_id=%20cl_1%20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = performRequest(r, http.MethodGet, "/v1/offers", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
	}
}

func TestTrackerHandler_CreateOffer(t *testing.T) {
	m := newTrackerMocks(t)
	r := newTestRouter()
	r.POST("/v1/offers", m.handler.CreateOffer)

	m.offers.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.NewOffer) (entities.Offer, error) {
		if in.ClientID != "cl_missing" || in.Status != entities.OfferStatusAccepted {
			t.Fatalf("unexpected input: %+v", in)
		}
		return entities.Offer{}, usecase.ErrClientNotFound
	})

	w := performRequest(r, http.MethodPost, "/v1/offers", `{"client_id":"cl_missing","title":"Roof","amount":10,"status":"accepted"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestTrackerHandler_CreatePayment(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "gateway bad request", err: usecase.ErrPaymentGatewayBadRequest, want: http.StatusBadRequest},
		{name: "gateway unauthorized", err: usecase.ErrPaymentGatewayUnauthorized, want: http.StatusBadGateway},
		{name: "gateway not configured", err: usecase.ErrPaymentGatewayNotConfigured, want: http.StatusServiceUnavailable},
		{name: "invalid method", err: usecase.ErrInvalidPaymentMethod, want: http.StatusBadRequest},
		{name: "unknown offer", err: usecase.ErrOfferNotFound, want: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTrackerMocks(t)
			r := newTestRouter()
			r.POST("/v1/payments", m.handler.CreatePayment)

			m.payments.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.Payment{}, tc.err)

			w := performRequest(r, http.MethodPost, "/v1/payments", `{"client_id":"cl_1","amount":50,"method":"card","mp_payload":{"token":"tok"}}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success forwards payload", func(t *testing.T) {
		m := newTrackerMocks(t)
		r := newTestRouter()
		r.POST("/v1/payments", m.handler.CreatePayment)

		m.payments.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.NewPayment) (entities.Payment, error) {
			if in.Method != entities.PaymentMethodCard || string(in.ProviderPayload) != `{"token":"tok"}` {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Payment{ID: "pay_1", ClientID: "cl_1", Amount: 50, Method: in.Method, ProviderPaymentID: "123", ProviderStatus: "approved"}, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/payments", `{"client_id":"cl_1","amount":50,"method":"card","mp_payload":{"token":"tok"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
