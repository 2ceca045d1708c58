// Package codec turns values into the opaque strings kept by a backend and back.
//
// A value is always serialized to JSON first. With a non-empty secret the JSON
// is encrypted (see cipher.go); otherwise, when encoding is enabled, it is
// percent-encoded. Encryption takes precedence over encoding.
//
// Encryption provides confidentiality only. There is no authentication tag, so a
// wrong passphrase is detected only when the decrypted bytes fail padding, UTF-8
// or JSON checks.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/8thgencore/webstore/pkg/uri"
)

// Encode serializes v according to the given policy
func Encode(v any, useEncoding bool, secret string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize value: %w", err)
	}

	switch {
	case secret != "":
		return encrypt(data, secret)
	case useEncoding:
		return uri.EncodeComponent(string(data)), nil
	default:
		return string(data), nil
	}
}

// Decode reverses Encode, storing the result in the value pointed to by out.
// Any failure wraps ErrDecode.
func Decode(text string, useEncoding bool, secret string, out any) error {
	var data []byte

	switch {
	case secret != "":
		plain, err := decrypt(text, secret)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		data = plain
	case useEncoding:
		plain, err := uri.DecodeComponent(text)
		if err != nil {
			return fmt.Errorf("%w: %w: %w", ErrDecode, ErrPercentEncoding, err)
		}
		data = []byte(plain)
	default:
		data = []byte(text)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}
