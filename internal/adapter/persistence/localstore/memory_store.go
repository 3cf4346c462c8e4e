package localstore

import (
	"context"
	"sync"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"
)

// MemoryStore keeps the encoded document in process. It round-trips through
// JSON like SQLiteStore so callers never share line slices with it.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

var _ interfaces.ISavedOfferStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(context.Context) ([]entities.SavedOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw == nil {
		return []entities.SavedOffer{}, nil
	}
	return decodeOffers(s.raw)
}

func (s *MemoryStore) Save(_ context.Context, offers []entities.SavedOffer) error {
	raw, err := encodeOffers(offers)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}
