// Package memory holds in-process repositories with the same semantics as
// the DynamoDB ones. They back BACKEND=memory and scenario tests.
package memory

import (
	"errors"
	"fmt"
	"sync"
)

var ErrAlreadyExists = errors.New("item already exists")

// table is a mutex-guarded map keyed by record id that remembers insertion
// order.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	id    func(T) string
}

func newTable[T any](id func(T) string) *table[T] {
	return &table[T]{rows: make(map[string]T), id: id}
}

func (t *table[T]) insert(v T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(v)
	if _, ok := t.rows[id]; ok {
		var zero T
		return zero, fmt.Errorf("memory: insert %s: %w", id, ErrAlreadyExists)
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return v, nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// deleteWhere removes every row matching drop. Deleting nothing is not an
// error.
func (t *table[T]) deleteWhere(drop func(T) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.order[:0]
	for _, id := range t.order {
		if drop(t.rows[id]) {
			delete(t.rows, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
}
