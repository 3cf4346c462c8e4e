package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"palettepad/internal/domain/entities"
	mock_interfaces "palettepad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOfferUseCase_Add(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewOfferUseCase(nil, nil)
		cases := []struct {
			in   NewOffer
			want error
		}{
			{NewOffer{Title: "x"}, ErrInvalidClientID},
			{NewOffer{ClientID: "cl_1"}, ErrInvalidOfferTitle},
			{NewOffer{ClientID: "cl_1", Title: "x", Amount: math.NaN()}, ErrInvalidOfferAmount},
			{NewOffer{ClientID: "cl_1", Title: "x", Status: "lost"}, ErrInvalidOfferStatus},
		}
		for _, c := range cases {
			if _, err := uc.Add(context.Background(), c.in); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		offers := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(offers, nil)

		offers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Offer) (entities.Offer, error) {
			return o, nil
		})

		got, err := uc.Add(context.Background(), NewOffer{ClientID: "cl_1", Title: "Facade", Amount: 900})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Currency != "EUR" || got.Status != entities.OfferStatusSent || got.DateOffered.IsZero() {
			t.Fatalf("unexpected defaults: %+v", got)
		}
	})
}

func TestOfferUseCase_DeleteCascadesLinkedPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	offers := mock_interfaces.NewMockIOfferRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewOfferUseCase(offers, payments)

	offers.EXPECT().GetByID(gomock.Any(), "of_1").Return(entities.Offer{ID: "of_1", ClientID: "cl_1"}, nil)
	payments.EXPECT().List(gomock.Any(), "cl_1").Return([]entities.Payment{
		{ID: "pay_1", OfferID: "of_1"},
		{ID: "pay_2", OfferID: "of_2"},
		{ID: "pay_3", OfferID: "of_1"},
	}, nil)
	payments.EXPECT().DeleteMany(gomock.Any(), []string{"pay_1", "pay_3"}).Return(nil)
	offers.EXPECT().Delete(gomock.Any(), "of_1").Return(nil)

	if err := uc.Delete(context.Background(), "of_1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestOfferUseCase_DeleteMissingOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	offers := mock_interfaces.NewMockIOfferRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewOfferUseCase(offers, payments)

	offers.EXPECT().GetByID(gomock.Any(), "of_x").Return(entities.Offer{}, nil)
	offers.EXPECT().Delete(gomock.Any(), "of_x").Return(nil)

	if err := uc.Delete(context.Background(), "of_x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
