package cookie

import "errors"

// ErrInvalidCookie is returned when a cookie line or header cannot be parsed
var ErrInvalidCookie = errors.New("invalid cookie")
