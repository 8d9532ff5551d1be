// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrCiphertextTooShort is returned when a blob is shorter than the GCM nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecryptionFailed is returned when GCM authentication fails, which
	// almost always means a wrong key.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrInvalidHash is returned for a malformed encoded passphrase hash.
	ErrInvalidHash = errors.New("invalid passphrase hash")
)
