package interfaces

import (
	"context"

	"palettepad/internal/domain/entities"
)

// IEntryRepository abstracts persistence of PalettePad color log entries.
type IEntryRepository interface {
	Create(ctx context.Context, e entities.Entry) (entities.Entry, error)
	List(ctx context.Context) ([]entities.Entry, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
