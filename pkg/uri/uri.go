// Package uri implements the percent-encoding used for stored payloads and
// cookie names.
package uri

import (
	"errors"
	"net/url"
	"unicode/utf8"
)

// ErrMalformed is returned when a percent-encoded string cannot be decoded
var ErrMalformed = errors.New("malformed percent-encoding")

const upperhex = "0123456789ABCDEF"

// EncodeComponent escapes every byte except ASCII letters, digits and - _ . ! ~ * ' ( )
func EncodeComponent(s string) string {
	return escape(s, isComponentSafe)
}

// EncodeToken escapes s so that the result is a valid HTTP token,
// usable as a cookie name.
func EncodeToken(s string) string {
	return escape(s, isTokenSafe)
}

// DecodeComponent reverses EncodeComponent and EncodeToken. The decoded
// result must be valid UTF-8.
func DecodeComponent(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", errors.Join(ErrMalformed, err)
	}
	if !utf8.ValidString(out) {
		return "", ErrMalformed
	}

	return out, nil
}

func escape(s string, safe func(byte) bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !safe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if safe(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}

	return string(buf)
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isComponentSafe(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func isTokenSafe(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '!', '#', '$', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
