package interfaces

import (
	"context"

	"palettepad/internal/domain/entities"
)

// IOfferRepository abstracts persistence of tracked offers.
//
// List with an empty clientID returns every offer.
type IOfferRepository interface {
	Create(ctx context.Context, o entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	List(ctx context.Context, clientID string) ([]entities.Offer, error)
	Delete(ctx context.Context, id string) error
	DeleteByClientID(ctx context.Context, clientID string) error
}
