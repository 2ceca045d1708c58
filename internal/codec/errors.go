package codec

import "errors"

// ErrDecode is returned when a stored payload cannot be turned back into a value.
// Every other decoding error in this package wraps it.
var ErrDecode = errors.New("failed to decode payload")

// ErrMalformedCiphertext is returned when the ciphertext is not a salted AES envelope
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// ErrDecrypt is returned when decryption produces invalid padding or non-UTF-8 text,
// which is what usually happens with a wrong passphrase
var ErrDecrypt = errors.New("failed to decrypt payload")

// ErrPercentEncoding is returned when the payload has invalid percent-encoding
var ErrPercentEncoding = errors.New("invalid percent-encoding")
