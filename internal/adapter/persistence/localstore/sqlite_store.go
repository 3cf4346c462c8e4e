// Package localstore persists the saved builder offers as a single JSON
// document under a fixed key.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	_ "modernc.org/sqlite"
)

// SavedOffersKey is the key the whole saved-offers array is stored under.
const SavedOffersKey = "palettepad_offers_v1"

// SQLiteStore keeps documents in a key/value table of a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ interfaces.ISavedOfferStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("localstore: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localstore: open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the stored list, or an empty one when nothing was saved yet.
func (s *SQLiteStore) Load(ctx context.Context) ([]entities.SavedOffer, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, SavedOffersKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []entities.SavedOffer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: load: %w", err)
	}
	return decodeOffers([]byte(raw))
}

// Save rewrites the full list.
func (s *SQLiteStore) Save(ctx context.Context, offers []entities.SavedOffer) error {
	raw, err := encodeOffers(offers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		SavedOffersKey, string(raw))
	if err != nil {
		return fmt.Errorf("localstore: save: %w", err)
	}
	return nil
}

func encodeOffers(offers []entities.SavedOffer) ([]byte, error) {
	if offers == nil {
		offers = []entities.SavedOffer{}
	}
	raw, err := json.Marshal(offers)
	if err != nil {
		return nil, fmt.Errorf("localstore: encode: %w", err)
	}
	return raw, nil
}

func decodeOffers(raw []byte) ([]entities.SavedOffer, error) {
	var offers []entities.SavedOffer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return nil, fmt.Errorf("localstore: decode: %w", err)
	}
	if offers == nil {
		offers = []entities.SavedOffer{}
	}
	return offers, nil
}
