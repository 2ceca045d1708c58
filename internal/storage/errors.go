package storage

import "github.com/8thgencore/webstore/internal/codec"

// ErrDecode is returned when a stored payload cannot be decoded with the
// current encode flag and passphrase
var ErrDecode = codec.ErrDecode
