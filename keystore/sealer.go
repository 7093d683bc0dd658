package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Sealer encrypts private key bytes at rest with AES-256-GCM under a
// master key. A nil *Sealer passes bytes through unchanged, which is the
// mode the in-memory backend runs in during tests.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a Sealer from a base64-encoded 32-byte master key
func NewSealer(base64MasterKey string) (*Sealer, error) {
	mk, err := base64.StdEncoding.DecodeString(base64MasterKey)
	if err != nil {
		return nil, fmt.Errorf("master-key decode: %w", err)
	}
	if len(mk) != 32 {
		return nil, errors.New("master-key must be 32 bytes")
	}

	block, _ := aes.NewCipher(mk)
	aead, _ := cipher.NewGCM(block)

	return &Sealer{aead: aead}, nil
}

// Seal encrypts plain, prepending the random nonce
func (s *Sealer) Seal(plain []byte) ([]byte, error) {
	if s == nil {
		return plain, nil
	}
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return append(nonce, s.aead.Seal(nil, nonce, plain, nil)...), nil
}

// Open decrypts ciphertext produced by Seal
func (s *Sealer) Open(ciphertext []byte) ([]byte, error) {
	if s == nil {
		return ciphertext, nil
	}
	ns := s.aead.NonceSize()
	if len(ciphertext) < ns {
		return nil, errors.New("ciphertext too short")
	}
	return s.aead.Open(nil, ciphertext[:ns], ciphertext[ns:], nil)
}
