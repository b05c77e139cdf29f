package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"iapstore/internal/domain"
)

var (
	// ErrOpen is returned when a blob fails authentication or is malformed.
	ErrOpen = errors.New("wrong key or corrupted cache")

	errKeySize = fmt.Errorf("key must be %d bytes", KeyBytes)
)

// AESGCM seals blobs with AES-256-GCM. Blob layout is nonce||ciphertext||tag.
type AESGCM struct{}

func (AESGCM) Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := newAESGCM(key)
	if err != nil {
		return nil, err
	}
	return seal(aead, plaintext)
}

func (AESGCM) Open(key, blob []byte) ([]byte, error) {
	aead, err := newAESGCM(key)
	if err != nil {
		return nil, err
	}
	return open(aead, blob)
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyBytes {
		return nil, errKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// ChaCha20Poly1305 seals blobs with ChaCha20-Poly1305. Blob layout is
// nonce||ciphertext||tag.
type ChaCha20Poly1305 struct{}

func (ChaCha20Poly1305) Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := newChaCha(key)
	if err != nil {
		return nil, err
	}
	return seal(aead, plaintext)
}

func (ChaCha20Poly1305) Open(key, blob []byte) ([]byte, error) {
	aead, err := newChaCha(key)
	if err != nil {
		return nil, err
	}
	return open(aead, blob)
}

func newChaCha(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyBytes {
		return nil, errKeySize
	}
	return chacha20poly1305.New(key)
}

// CipherByName resolves a configured cipher name.
func CipherByName(name string) (domain.Cipher, error) {
	switch name {
	case "", "aes-gcm":
		return AESGCM{}, nil
	case "chacha20poly1305":
		return ChaCha20Poly1305{}, nil
	}
	return nil, &domain.UnknownVariantError{Enum: "cipher", Token: name}
}

func seal(aead cipher.AEAD, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func open(aead cipher.AEAD, blob []byte) ([]byte, error) {
	ns := aead.NonceSize()
	if len(blob) < ns+aead.Overhead() {
		return nil, ErrOpen
	}
	pt, err := aead.Open(nil, blob[:ns], blob[ns:], nil)
	if err != nil {
		return nil, ErrOpen
	}
	return pt, nil
}

var (
	_ domain.Cipher = AESGCM{}
	_ domain.Cipher = ChaCha20Poly1305{}
)
