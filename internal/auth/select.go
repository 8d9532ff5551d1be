// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"

	"github.com/MKhiriev/go-lockpad/internal/config"
	"github.com/MKhiriev/go-lockpad/internal/crypto"
)

// NewCapability builds the capability named by cfg.Method. prompter backs the
// passphrase capability and may be nil when only biometrics are wanted.
func NewCapability(cfg config.Auth, prompter Prompter) (Capability, error) {
	biometric := NewBiometricCapability()
	passphrase := NewPassphraseCapability(cfg.PassphraseHash, crypto.NewPassphraseHasher(), prompter)

	switch cfg.Method {
	case config.AuthMethodBiometric:
		return biometric, nil
	case config.AuthMethodPassphrase:
		return passphrase, nil
	case config.AuthMethodAuto, "":
		return NewFallbackCapability(biometric, passphrase), nil
	default:
		return nil, fmt.Errorf("unknown auth method %q", cfg.Method)
	}
}
