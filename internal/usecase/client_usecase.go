package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("client name is required")
)

// NewClient is the input of IClientUseCase.Add.
type NewClient struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// PaymentView is a payment annotated with the title of its linked offer, when
// that offer still exists.
type PaymentView struct {
	entities.Payment
	OfferTitle string `json:"offer_title,omitempty"`
}

// ClientDetail is everything the tracker shows for one client.
type ClientDetail struct {
	Client   entities.Client       `json:"client"`
	Offers   []entities.Offer      `json:"offers"`
	Payments []PaymentView         `json:"payments"`
	Totals   entities.ClientTotals `json:"totals"`
}

// IClientUseCase exposes the client side of the tracker.
type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Detail(ctx context.Context, id string) (ClientDetail, error)
	Totals(ctx context.Context, id string) (entities.ClientTotals, error)
	Add(ctx context.Context, in NewClient) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	offers   interfaces.IOfferRepository
	payments interfaces.IPaymentRepository
	now      func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, offers interfaces.IOfferRepository, payments interfaces.IPaymentRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, offers: offers, payments: payments, now: time.Now}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.clients.List(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Detail(ctx context.Context, id string) (ClientDetail, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return ClientDetail{}, err
	}
	offers, err := u.offers.List(ctx, c.ID)
	if err != nil {
		return ClientDetail{}, err
	}
	payments, err := u.payments.List(ctx, c.ID)
	if err != nil {
		return ClientDetail{}, err
	}

	titles := make(map[string]string, len(offers))
	for _, o := range offers {
		titles[o.ID] = o.Title
	}
	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, PaymentView{Payment: p, OfferTitle: titles[p.OfferID]})
	}

	return ClientDetail{
		Client:   c,
		Offers:   offers,
		Payments: views,
		Totals:   ComputeClientTotals(offers, payments),
	}, nil
}

func (u *ClientUseCase) Totals(ctx context.Context, id string) (entities.ClientTotals, error) {
	d, err := u.Detail(ctx, id)
	if err != nil {
		return entities.ClientTotals{}, err
	}
	return d.Totals, nil
}

func (u *ClientUseCase) Add(ctx context.Context, in NewClient) (entities.Client, error) {
	c := entities.Client{
		ID:        newID(idPrefixClient),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: u.now().UTC(),
	}
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		zap.S().Errorf("[client][usecase] create failed name=%q err=%v", c.Name, err)
		return entities.Client{}, err
	}
	zap.S().Infof("[client][usecase] created id=%s", created.ID)
	return created, nil
}

// Delete removes the client together with its offers and payments.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if err := u.payments.DeleteByClientID(ctx, id); err != nil {
		zap.S().Errorf("[client][usecase] cascade payments failed id=%s err=%v", id, err)
		return err
	}
	if err := u.offers.DeleteByClientID(ctx, id); err != nil {
		zap.S().Errorf("[client][usecase] cascade offers failed id=%s err=%v", id, err)
		return err
	}
	if err := u.clients.Delete(ctx, id); err != nil {
		zap.S().Errorf("[client][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	zap.S().Infof("[client][usecase] deleted id=%s", id)
	return nil
}

// ComputeClientTotals sums offered and paid amounts. The currency is the one
// of the first offer, or EUR when there are none.
func ComputeClientTotals(offers []entities.Offer, payments []entities.Payment) entities.ClientTotals {
	t := entities.ClientTotals{Currency: entities.DefaultCurrency}
	if len(offers) > 0 && offers[0].Currency != "" {
		t.Currency = offers[0].Currency
	}
	for _, o := range offers {
		t.Offered += o.Amount
	}
	for _, p := range payments {
		t.Paid += p.Amount
	}
	t.Outstanding = t.Offered - t.Paid
	return t
}
