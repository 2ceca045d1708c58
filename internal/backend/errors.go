package backend

import "errors"

// ErrUnknownKind is returned for a storage kind name that is not supported
var ErrUnknownKind = errors.New("unknown storage kind")

// ErrClosed is returned when a backend is used after Close
var ErrClosed = errors.New("backend closed")
