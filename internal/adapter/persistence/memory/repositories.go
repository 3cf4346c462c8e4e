package memory

import (
	"cmp"
	"context"
	"slices"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"
)

type EntryRepository struct{ t *table[entities.Entry] }

var _ interfaces.IEntryRepository = (*EntryRepository)(nil)

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{t: newTable(func(e entities.Entry) string { return e.ID })}
}

func (r *EntryRepository) Create(_ context.Context, e entities.Entry) (entities.Entry, error) {
	return r.t.insert(e)
}

func (r *EntryRepository) List(context.Context) ([]entities.Entry, error) {
	out := r.t.filter(nil)
	slices.SortStableFunc(out, func(a, b entities.Entry) int { return cmp.Compare(b.When, a.When) })
	return out, nil
}

func (r *EntryRepository) Delete(_ context.Context, id string) error {
	r.t.deleteWhere(func(e entities.Entry) bool { return e.ID == id })
	return nil
}

func (r *EntryRepository) DeleteAll(context.Context) error {
	r.t.deleteWhere(func(entities.Entry) bool { return true })
	return nil
}

type ClientRepository struct{ t *table[entities.Client] }

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository() *ClientRepository {
	return &ClientRepository{t: newTable(func(c entities.Client) string { return c.ID })}
}

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	return r.t.insert(c)
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	c, _ := r.t.get(id)
	return c, nil
}

func (r *ClientRepository) List(context.Context) ([]entities.Client, error) {
	out := r.t.filter(nil)
	slices.SortStableFunc(out, func(a, b entities.Client) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.t.deleteWhere(func(c entities.Client) bool { return c.ID == id })
	return nil
}

type OfferRepository struct{ t *table[entities.Offer] }

var _ interfaces.IOfferRepository = (*OfferRepository)(nil)

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{t: newTable(func(o entities.Offer) string { return o.ID })}
}

func (r *OfferRepository) Create(_ context.Context, o entities.Offer) (entities.Offer, error) {
	return r.t.insert(o)
}

func (r *OfferRepository) GetByID(_ context.Context, id string) (entities.Offer, error) {
	o, _ := r.t.get(id)
	return o, nil
}

func (r *OfferRepository) List(_ context.Context, clientID string) ([]entities.Offer, error) {
	out := r.t.filter(func(o entities.Offer) bool { return clientID == "" || o.ClientID == clientID })
	slices.SortStableFunc(out, func(a, b entities.Offer) int { return b.DateOffered.Compare(a.DateOffered) })
	return out, nil
}

func (r *OfferRepository) Delete(_ context.Context, id string) error {
	r.t.deleteWhere(func(o entities.Offer) bool { return o.ID == id })
	return nil
}

func (r *OfferRepository) DeleteByClientID(_ context.Context, clientID string) error {
	r.t.deleteWhere(func(o entities.Offer) bool { return o.ClientID == clientID })
	return nil
}

type PaymentRepository struct{ t *table[entities.Payment] }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{t: newTable(func(p entities.Payment) string { return p.ID })}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	return r.t.insert(p)
}

func (r *PaymentRepository) List(_ context.Context, clientID string) ([]entities.Payment, error) {
	out := r.t.filter(func(p entities.Payment) bool { return clientID == "" || p.ClientID == clientID })
	slices.SortStableFunc(out, func(a, b entities.Payment) int { return b.PaidAt.Compare(a.PaidAt) })
	return out, nil
}

func (r *PaymentRepository) Delete(_ context.Context, id string) error {
	r.t.deleteWhere(func(p entities.Payment) bool { return p.ID == id })
	return nil
}

func (r *PaymentRepository) DeleteMany(_ context.Context, ids []string) error {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	r.t.deleteWhere(func(p entities.Payment) bool {
		_, ok := set[p.ID]
		return ok
	})
	return nil
}

func (r *PaymentRepository) DeleteByClientID(_ context.Context, clientID string) error {
	r.t.deleteWhere(func(p entities.Payment) bool { return p.ClientID == clientID })
	return nil
}
