// Package backend defines the raw key-value boundary the storage facade
// writes opaque strings through.
package backend

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies one of the storage mechanisms
type Kind string

const (
	// Session is shared by every facade in the process and lives as long as the process
	Session Kind = "Session"
	// Local is shared by every facade using the same database file and survives restarts
	Local Kind = "Local"
	// Memory is owned by a single facade and disappears with it
	Memory Kind = "Memory"
	// Cookie maps every key to one cookie in a cookie document
	Cookie Kind = "Cookie"
)

// Kinds lists every supported storage kind
var Kinds = []Kind{Session, Local, Memory, Cookie}

// ParseKind resolves a kind name case-insensitively
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), strings.TrimSpace(name)) {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Backend stores opaque strings under string keys
type Backend interface {
	// Kind reports which storage mechanism this backend implements
	Kind() Kind
	// SetItem stores value under key. Only backends with native expiry use expiry.
	SetItem(key, value string, expiry *time.Time) error
	// GetItem returns the stored value and whether it exists
	GetItem(key string) (string, bool, error)
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error
	// Keys lists the stored keys starting with prefix in ascending order
	Keys(prefix string) ([]string, error)
}

// Reloader is implemented by backends whose keys cannot be enumerated directly.
// ReloadItems must be called before Keys to refresh the snapshot of
// entries under field+delimiter.
type Reloader interface {
	ReloadItems(field, delimiter string) error
}

// NativeExpiry reports whether the backend keeps expiry outside the stored payload
func NativeExpiry(b Backend) bool {
	return b.Kind() == Cookie
}
