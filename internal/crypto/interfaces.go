// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all symmetric cryptography of the sql note stores.
// It knows nothing about databases or notes; it only derives, wraps, and
// uses keys.
//
// Scheme:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()   (once per namespace)
//	KEK       = GenerateKEK(secret, salt)                   (every open)
//	WrappedDEK = WrapDEK(DEK, KEK)                          (stored with salt)
//	Sealed    = Seal(plaintext, DEK)                        (stored per note)
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes. The salt is not secret.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK returns a random 256-bit data-encryption key.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives a 256-bit key-encryption key from secret and salt
	// with Argon2id. The KEK only ever lives in memory.
	GenerateKEK(secret string, salt []byte) []byte

	// WrapDEK encrypts DEK with KEK using AES-GCM. The blob is nonce ‖ ciphertext.
	WrapDEK(DEK, KEK []byte) ([]byte, error)

	// UnwrapDEK reverses WrapDEK. A wrong KEK yields [ErrDecryptionFailed].
	UnwrapDEK(wrappedDEK, KEK []byte) ([]byte, error)

	// Seal encrypts plaintext with DEK and returns base64(nonce ‖ ciphertext).
	// additionalData binds the blob to its location (namespace and key).
	Seal(plaintext string, DEK, additionalData []byte) (string, error)

	// Open reverses Seal.
	Open(sealed string, DEK, additionalData []byte) (string, error)
}

// PassphraseHasher produces and checks self-describing Argon2id hashes.
type PassphraseHasher interface {
	// Hash returns an encoded hash of the form
	// $argon2id$v=19$m=<KiB>,t=<iters>,p=<threads>$<salt>$<key>.
	Hash(passphrase string) (string, error)

	// Verify reports whether passphrase matches encoded. A malformed encoded
	// hash yields [ErrInvalidHash].
	Verify(passphrase, encoded string) (bool, error)
}
