// Package memory implements the in-process backends: a per-facade Memory store
// and the process-wide Session store.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/8thgencore/webstore/internal/backend"
	"github.com/tidwall/btree"
)

// Store is an ordered in-memory backend. Expiry is never enforced.
type Store struct {
	mu   sync.RWMutex
	kind backend.Kind
	keys *btree.Map[string, string]
}

var (
	session     *Store
	sessionOnce sync.Once
)

// New creates an empty Memory store
func New() *Store {
	return newStore(backend.Memory)
}

// Session returns the process-wide Session store
func Session() *Store {
	sessionOnce.Do(func() {
		session = newStore(backend.Session)
	})

	return session
}

func newStore(kind backend.Kind) *Store {
	return &Store{
		kind: kind,
		keys: btree.NewMap[string, string](0),
	}
}

// Kind implements backend.Backend
func (s *Store) Kind() backend.Kind {
	return s.kind
}

// SetItem implements backend.Backend
func (s *Store) SetItem(key, value string, _ *time.Time) error {
	s.mu.Lock()
	s.keys.Set(key, value)
	s.mu.Unlock()

	return nil
}

// GetItem implements backend.Backend
func (s *Store) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	value, ok := s.keys.Get(key)
	s.mu.RUnlock()

	return value, ok, nil
}

// RemoveItem implements backend.Backend
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	s.keys.Delete(key)
	s.mu.Unlock()

	return nil
}

// Keys implements backend.Backend
func (s *Store) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	s.keys.Ascend(prefix, func(key, _ string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		keys = append(keys, key)
		return true
	})

	return keys, nil
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.keys.Len()
}

// Clear removes every key
func (s *Store) Clear() {
	s.mu.Lock()
	s.keys.Clear()
	s.mu.Unlock()
}
