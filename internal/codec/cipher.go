package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // key derivation must match the OpenSSL/CryptoJS passphrase format
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// Ciphertexts use the OpenSSL "Salted__" layout produced by `openssl enc -aes-256-cbc -md md5`
// and by CryptoJS.AES with a passphrase: base64("Salted__" | salt[8] | AES-256-CBC(PKCS#7)).
const (
	saltHeader = "Salted__"
	saltSize   = 8
	keySize    = 32
)

func encrypt(plaintext []byte, passphrase string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	return encryptWithSalt(plaintext, passphrase, salt)
}

func encryptWithSalt(plaintext []byte, passphrase string, salt []byte) (string, error) {
	key, iv := deriveKey([]byte(passphrase), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	out := make([]byte, 0, len(saltHeader)+saltSize+len(padded))
	out = append(out, saltHeader...)
	out = append(out, salt...)

	sealed := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(sealed, padded)
	out = append(out, sealed...)

	return base64.StdEncoding.EncodeToString(out), nil
}

func decrypt(text, passphrase string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	headerLen := len(saltHeader) + saltSize
	if len(raw) < headerLen+aes.BlockSize || !bytes.HasPrefix(raw, []byte(saltHeader)) {
		return nil, ErrMalformedCiphertext
	}

	salt, sealed := raw[len(saltHeader):headerLen], raw[headerLen:]
	if len(sealed)%aes.BlockSize != 0 {
		return nil, ErrMalformedCiphertext
	}

	key, iv := deriveKey([]byte(passphrase), salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plain := make([]byte, len(sealed))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, sealed)

	plain, ok := unpad(plain, aes.BlockSize)
	if !ok || !utf8.Valid(plain) {
		return nil, ErrDecrypt
	}

	return plain, nil
}

// deriveKey is OpenSSL's EVP_BytesToKey with MD5 and a single iteration
func deriveKey(passphrase, salt []byte) (key, iv []byte) {
	var derived, prev []byte
	for len(derived) < keySize+aes.BlockSize {
		h := md5.New() //nolint:gosec
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:keySize], derived[keySize : keySize+aes.BlockSize]
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, bool) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, false
	}

	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, false
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, false
		}
	}

	return b[:len(b)-n], true
}
