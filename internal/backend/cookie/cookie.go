// Package cookie implements the Cookie backend: every key is one cookie with
// path "/" in a Document, and expiry is handled by the cookie itself.
package cookie

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/8thgencore/webstore/internal/backend"
	"github.com/8thgencore/webstore/pkg/uri"
	"github.com/tidwall/btree"
)

const expiredDate = "Thu, 01 Jan 1970 00:00:00 GMT"

// Store is a cookie-backed backend. Cookies cannot be enumerated as a
// mapping, so Keys only sees the snapshot taken by the last ReloadItems.
type Store struct {
	doc *Document

	mu     sync.Mutex
	mirror *btree.Map[string, string]
}

// New creates a Store over doc, or over the process-wide document when doc is nil
func New(doc *Document) *Store {
	if doc == nil {
		doc = DefaultDocument()
	}

	return &Store{
		doc:    doc,
		mirror: btree.NewMap[string, string](0),
	}
}

// Document returns the cookie document this store writes to
func (s *Store) Document() *Document {
	return s.doc
}

// Kind implements backend.Backend
func (*Store) Kind() backend.Kind {
	return backend.Cookie
}

// SetItem writes key=value with path "/". A nil expiry makes a session cookie.
func (s *Store) SetItem(key, value string, expiry *time.Time) error {
	line := uri.EncodeToken(key) + "=" + uri.EncodeComponent(value) + "; path=/"
	if expiry != nil {
		line += "; expires=" + expiry.UTC().Format(http.TimeFormat)
	}

	return s.doc.SetCookie(line)
}

// GetItem looks key up in the current cookie header
func (s *Store) GetItem(key string) (string, bool, error) {
	pattern, err := regexp.Compile("(?:^|; )" + regexp.QuoteMeta(uri.EncodeToken(key)) + "=([^;]*)")
	if err != nil {
		return "", false, err
	}

	matches := pattern.FindStringSubmatch(s.doc.Cookie())
	if matches == nil {
		return "", false, nil
	}

	value, err := uri.DecodeComponent(matches[1])
	if err != nil {
		return "", false, fmt.Errorf("%w: value of %q: %w", ErrInvalidCookie, key, err)
	}

	return value, true, nil
}

// RemoveItem expires the cookie
func (s *Store) RemoveItem(key string) error {
	if err := s.doc.SetCookie(uri.EncodeToken(key) + "=; path=/; expires=" + expiredDate); err != nil {
		return err
	}

	s.mu.Lock()
	s.mirror.Delete(key)
	s.mu.Unlock()

	return nil
}

// ReloadItems re-parses the cookie header and replaces the snapshot of every
// cookie whose name starts with field+delimiter
func (s *Store) ReloadItems(field, delimiter string) error {
	prefix := field + delimiter
	fresh := make(map[string]string)

	for _, pair := range strings.Split(s.doc.Cookie(), "; ") {
		rawName, rawValue, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}

		name, err := uri.DecodeComponent(rawName)
		if err != nil || !strings.HasPrefix(name, prefix) {
			continue
		}

		value, err := uri.DecodeComponent(rawValue)
		if err != nil {
			return fmt.Errorf("%w: value of %q: %w", ErrInvalidCookie, name, err)
		}
		fresh[name] = value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.keys(prefix) {
		s.mirror.Delete(key)
	}
	for name, value := range fresh {
		s.mirror.Set(name, value)
	}

	return nil
}

// Keys implements backend.Backend from the last snapshot
func (s *Store) Keys(prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.keys(prefix), nil
}

func (s *Store) keys(prefix string) []string {
	var keys []string
	s.mirror.Ascend(prefix, func(key, _ string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		keys = append(keys, key)
		return true
	})

	return keys
}
