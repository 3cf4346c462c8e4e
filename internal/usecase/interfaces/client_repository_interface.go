package interfaces

import (
	"context"

	"palettepad/internal/domain/entities"
)

// IClientRepository abstracts persistence of clients.
//
// GetByID returns a zero Client (empty ID) when nothing matches.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Delete(ctx context.Context, id string) error
}
