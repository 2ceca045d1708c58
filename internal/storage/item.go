package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is a decoded entry. Expiry is nil when none was stored; the Cookie kind
// never stores one in the payload.
type Item struct {
	Value  json.RawMessage
	Expiry *time.Time
}

// Decode unmarshals the item value into out
func (i Item) Decode(out any) error {
	if err := json.Unmarshal(i.Value, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// envelope is what gets serialized before the codec transform
type envelope struct {
	Value any        `json:"value"`
	Exp   *time.Time `json:"exp,omitempty"`
}

type storedEnvelope struct {
	Value json.RawMessage `json:"value"`
	Exp   *time.Time      `json:"exp,omitempty"`
}
