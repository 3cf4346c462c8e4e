package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"palettepad/internal/domain/entities"
	mock_interfaces "palettepad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_Record(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, "")
		cases := []struct {
			in   NewPayment
			want error
		}{
			{NewPayment{Amount: 10}, ErrInvalidClientID},
			{NewPayment{ClientID: "cl_1", Amount: 0}, ErrInvalidPaymentAmount},
			{NewPayment{ClientID: "cl_1", Amount: -5}, ErrInvalidPaymentAmount},
			{NewPayment{ClientID: "cl_1", Amount: 5, Method: "crypto"}, ErrInvalidPaymentMethod},
		}
		for _, c := range cases {
			if _, err := uc.Record(context.Background(), c.in); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		}
	})

	t.Run("cash skips gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gw, "")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		got, err := uc.Record(context.Background(), NewPayment{ClientID: "cl_1", Amount: 50, Method: "CASH", ProviderPayload: json.RawMessage(`{}`)})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Method != entities.PaymentMethodCash || got.ProviderPaymentID != "" {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})

	t.Run("card charges gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gw, "buyer@test.com")

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(body, &req); err != nil {
				t.Fatalf("payload not json: %v", err)
			}
			if req["transaction_amount"] != 120.0 {
				t.Fatalf("expected amount 120, got %v", req["transaction_amount"])
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "buyer@test.com" {
				t.Fatalf("expected sandbox payer email, got %v", payer["email"])
			}
			return "987", "approved", json.RawMessage(`{}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

		got, err := uc.Record(context.Background(), NewPayment{
			ClientID:        "cl_1",
			Amount:          120,
			Method:          entities.PaymentMethodCard,
			ProviderPayload: json.RawMessage(`{"payment_method_id":"visa","token":"tok"}`),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ProviderPaymentID != "987" || got.ProviderStatus != "approved" {
			t.Fatalf("unexpected provider fields: %+v", got)
		}
	})

	t.Run("card payload missing method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gw, "")

		_, err := uc.Record(context.Background(), NewPayment{ClientID: "cl_1", Amount: 1, Method: "card", ProviderPayload: json.RawMessage(`{"token":"x"}`)})
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway failure stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gw, "")

		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"status":401,"error":"unauthorized"}`))

		_, err := uc.Record(context.Background(), NewPayment{
			ClientID:        "cl_1",
			Amount:          10,
			Method:          "card",
			ProviderPayload: json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"a@b.c"}}`),
		})
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestClassifyGatewayError(t *testing.T) {
	cases := map[string]error{
		`{"message":"Customer not found"}`:      ErrPaymentGatewayCustomerNotFound,
		`{"cause":[{"code":2034}]}`:             ErrPaymentGatewayInvalidUsers,
		`{"error":"bad_request","status":400}`:  ErrPaymentGatewayBadRequest,
		`{"error":"unauthorized","status":401}`: ErrPaymentGatewayUnauthorized,
	}
	for msg, want := range cases {
		if got := classifyGatewayError(errors.New(msg)); !errors.Is(got, want) {
			t.Fatalf("%s: expected %v, got %v", msg, want, got)
		}
	}
	other := errors.New("timeout")
	if got := classifyGatewayError(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
