package interfaces

import (
	"context"

	"palettepad/internal/domain/entities"
)

// ISavedOfferStore persists the whole saved-offers list as one document.
// Save always rewrites the full list.
type ISavedOfferStore interface {
	Load(ctx context.Context) ([]entities.SavedOffer, error)
	Save(ctx context.Context, offers []entities.SavedOffer) error
}
