package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOfferNotFound      = errors.New("offer not found")
	ErrInvalidOfferID     = errors.New("invalid offer id")
	ErrInvalidOfferTitle  = errors.New("offer title is required")
	ErrInvalidOfferAmount = errors.New("invalid offer amount")
	ErrInvalidOfferStatus = errors.New("invalid offer status")
)

// NewOffer is the input of IOfferUseCase.Add. Currency, Status and
// DateOffered fall back to EUR, sent and now.
type NewOffer struct {
	ClientID    string
	Title       string
	Description string
	Amount      float64
	Currency    string
	Status      entities.OfferStatus
	DateOffered *time.Time
}

// IOfferUseCase exposes the offer side of the tracker.
type IOfferUseCase interface {
	List(ctx context.Context, clientID string) ([]entities.Offer, error)
	Add(ctx context.Context, in NewOffer) (entities.Offer, error)
	Delete(ctx context.Context, id string) error
}

type OfferUseCase struct {
	offers   interfaces.IOfferRepository
	payments interfaces.IPaymentRepository
	now      func() time.Time
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(offers interfaces.IOfferRepository, payments interfaces.IPaymentRepository) *OfferUseCase {
	return &OfferUseCase{offers: offers, payments: payments, now: time.Now}
}

func (u *OfferUseCase) List(ctx context.Context, clientID string) ([]entities.Offer, error) {
	return u.offers.List(ctx, strings.TrimSpace(clientID))
}

func (u *OfferUseCase) Add(ctx context.Context, in NewOffer) (entities.Offer, error) {
	o := entities.Offer{
		ID:          newID(idPrefixOffer),
		ClientID:    strings.TrimSpace(in.ClientID),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Currency:    strings.ToUpper(strings.TrimSpace(in.Currency)),
		Status:      entities.OfferStatus(strings.ToLower(strings.TrimSpace(string(in.Status)))),
	}
	switch {
	case o.ClientID == "":
		return entities.Offer{}, ErrInvalidClientID
	case o.Title == "":
		return entities.Offer{}, ErrInvalidOfferTitle
	case math.IsNaN(o.Amount) || math.IsInf(o.Amount, 0):
		return entities.Offer{}, ErrInvalidOfferAmount
	}
	if o.Currency == "" {
		o.Currency = entities.DefaultCurrency
	}
	if o.Status == "" {
		o.Status = entities.OfferStatusSent
	}
	if !o.Status.Valid() {
		return entities.Offer{}, ErrInvalidOfferStatus
	}
	if in.DateOffered != nil && !in.DateOffered.IsZero() {
		o.DateOffered = in.DateOffered.UTC()
	} else {
		o.DateOffered = u.now().UTC()
	}

	created, err := u.offers.Create(ctx, o)
	if err != nil {
		zap.S().Errorf("[offer][usecase] create failed client_id=%s err=%v", o.ClientID, err)
		return entities.Offer{}, err
	}
	zap.S().Infof("[offer][usecase] created id=%s client_id=%s amount=%.2f", created.ID, created.ClientID, created.Amount)
	return created, nil
}

// Delete removes the offer and every payment linked to it.
func (u *OfferUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOfferID
	}

	o, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID != "" {
		payments, err := u.payments.List(ctx, o.ClientID)
		if err != nil {
			return err
		}
		var linked []string
		for _, p := range payments {
			if p.OfferID == id {
				linked = append(linked, p.ID)
			}
		}
		if len(linked) > 0 {
			if err := u.payments.DeleteMany(ctx, linked); err != nil {
				zap.S().Errorf("[offer][usecase] cascade payments failed id=%s err=%v", id, err)
				return err
			}
		}
	}

	if err := u.offers.Delete(ctx, id); err != nil {
		zap.S().Errorf("[offer][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	zap.S().Infof("[offer][usecase] deleted id=%s", id)
	return nil
}
