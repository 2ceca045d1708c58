// Package storage provides the facade that namespaces keys by field and
// encodes values before handing them to one backend.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/8thgencore/webstore/internal/backend"
	"github.com/8thgencore/webstore/internal/codec"
	"github.com/8thgencore/webstore/pkg/logger/sl"
)

// Storage binds one backend, one codec policy and a field delimiter
type Storage struct {
	backend backend.Backend
	log     *slog.Logger

	mu         sync.RWMutex
	encode     bool
	encryptKey string
	delimiter  string
}

type policy struct {
	encode     bool
	encryptKey string
	delimiter  string
}

// New creates a Storage over the backend of the given kind
func New(kind backend.Kind, opts ...Option) (*Storage, error) {
	o := newDefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	b, err := openBackend(kind, o)
	if err != nil {
		return nil, err
	}

	return newStorage(b, o), nil
}

// NewWithBackend creates a Storage over an already opened backend
func NewWithBackend(b backend.Backend, opts ...Option) *Storage {
	o := newDefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return newStorage(b, o)
}

func newStorage(b backend.Backend, o *Options) *Storage {
	log := o.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Storage{
		backend:    b,
		log:        log.With("storage", string(b.Kind())),
		encode:     o.Encode,
		encryptKey: o.EncryptKey,
		delimiter:  o.Delimiter,
	}
}

// Kind returns the kind of the bound backend
func (s *Storage) Kind() backend.Kind {
	return s.backend.Kind()
}

// Backend returns the bound backend
func (s *Storage) Backend() backend.Backend {
	return s.backend
}

// SetEncryptKey sets the passphrase used from the next call on. An empty
// passphrase disables encryption.
func (s *Storage) SetEncryptKey(passphrase string) {
	s.mu.Lock()
	s.encryptKey = passphrase
	s.mu.Unlock()
}

// SetEncode enables or disables percent-encoding from the next call on
func (s *Storage) SetEncode(encode bool) {
	s.mu.Lock()
	s.encode = encode
	s.mu.Unlock()
}

// SetDelimiter changes the field delimiter. An empty delimiter keeps the
// current one. Entries written under the old delimiter are not renamed.
func (s *Storage) SetDelimiter(delimiter string) {
	if delimiter == "" {
		return
	}

	s.mu.Lock()
	s.delimiter = delimiter
	s.mu.Unlock()
}

// Encode reports whether percent-encoding is enabled
func (s *Storage) Encode() bool {
	return s.policy().encode
}

// Encrypted reports whether a passphrase is set
func (s *Storage) Encrypted() bool {
	return s.policy().encryptKey != ""
}

// Delimiter returns the current field delimiter
func (s *Storage) Delimiter() string {
	return s.policy().delimiter
}

// Key builds the composite key for field and key
func (s *Storage) Key(field, key string) string {
	return field + s.policy().delimiter + key
}

func (s *Storage) policy() policy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return policy{encode: s.encode, encryptKey: s.encryptKey, delimiter: s.delimiter}
}

// SetItem stores value under field and key. expiry may be nil. The Cookie
// kind turns expiry into the cookie's own expiry instead of storing it.
func (s *Storage) SetItem(field, key string, value any, expiry *time.Time) error {
	p := s.policy()
	name := field + p.delimiter + key

	env := envelope{Value: value, Exp: expiry}
	if backend.NativeExpiry(s.backend) {
		env.Exp = nil
	}

	payload, err := codec.Encode(env, p.encode, p.encryptKey)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", name, err)
	}

	s.log.Debug("Setting item", sl.Key(name))

	return s.backend.SetItem(name, payload, expiry)
}

// GetItem decodes the value stored under field and key into out. It reports
// false without touching out when nothing is stored.
func (s *Storage) GetItem(field, key string, out any) (bool, error) {
	item, ok, err := s.Item(field, key)
	if err != nil || !ok {
		return ok, err
	}

	if err := item.Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", s.Key(field, key), err)
	}

	return true, nil
}

// Item returns the decoded entry stored under field and key
func (s *Storage) Item(field, key string) (Item, bool, error) {
	p := s.policy()
	return s.item(field+p.delimiter+key, p)
}

func (s *Storage) item(name string, p policy) (Item, bool, error) {
	s.log.Debug("Getting item", sl.Key(name))

	raw, ok, err := s.backend.GetItem(name)
	if err != nil || !ok {
		return Item{}, false, err
	}

	var env storedEnvelope
	if err := codec.Decode(raw, p.encode, p.encryptKey, &env); err != nil {
		return Item{}, false, fmt.Errorf("failed to decode %q: %w", name, err)
	}
	if len(env.Value) == 0 {
		env.Value = json.RawMessage("null")
	}

	return Item{Value: env.Value, Expiry: env.Exp}, true, nil
}

// RemoveItem deletes the entry stored under field and key
func (s *Storage) RemoveItem(field, key string) error {
	name := s.Key(field, key)
	s.log.Debug("Removing item", sl.Key(name))

	return s.backend.RemoveItem(name)
}

// GetItems decodes every entry of field, keyed by composite key
func (s *Storage) GetItems(field string) (map[string]Item, error) {
	p := s.policy()

	keys, err := s.keys(field, p.delimiter)
	if err != nil {
		return nil, err
	}

	items := make(map[string]Item, len(keys))
	for _, name := range keys {
		item, ok, err := s.item(name, p)
		if err != nil {
			return nil, err
		}
		if ok {
			items[name] = item
		}
	}

	return items, nil
}

// RemoveItems deletes every entry of field
func (s *Storage) RemoveItems(field string) error {
	keys, err := s.keys(field, s.policy().delimiter)
	if err != nil {
		return err
	}

	s.log.Debug("Removing items", "field", field, "count", len(keys))

	for _, name := range keys {
		if err := s.backend.RemoveItem(name); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) keys(field, delimiter string) ([]string, error) {
	if r, ok := s.backend.(backend.Reloader); ok {
		if err := r.ReloadItems(field, delimiter); err != nil {
			return nil, fmt.Errorf("failed to reload %q: %w", field, err)
		}
	}

	keys, err := s.backend.Keys(field + delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", field, err)
	}

	return keys, nil
}
