// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the key handling used by the encrypted sql note stores
// and the passphrase capability.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	return randomBytes(16)
}

func (k *keyChainService) GenerateDEK() ([]byte, error) {
	return randomBytes(32)
}

func (k *keyChainService) GenerateKEK(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
}

func (k *keyChainService) WrapDEK(DEK, KEK []byte) ([]byte, error) {
	return seal(DEK, KEK, nil)
}

func (k *keyChainService) UnwrapDEK(wrappedDEK, KEK []byte) ([]byte, error) {
	return open(wrappedDEK, KEK, nil)
}

func (k *keyChainService) Seal(plaintext string, DEK, additionalData []byte) (string, error) {
	blob, err := seal([]byte(plaintext), DEK, additionalData)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (k *keyChainService) Open(sealed string, DEK, additionalData []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	plaintext, err := open(blob, DEK, additionalData)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// seal encrypts plaintext with AES-256-GCM and returns nonce ‖ ciphertext.
func seal(plaintext, key, additionalData []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, additionalData)
	return append(nonce, ciphertext...), nil
}

func open(blob, key, additionalData []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
