// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockpad/internal/crypto"
)

// PassphraseCapability authenticates the owner with a passphrase checked
// against an Argon2id encoded hash. It is the fallback where no biometric
// hardware exists.
type PassphraseCapability struct {
	encodedHash string
	hasher      crypto.PassphraseHasher
	prompter    Prompter
}

// NewPassphraseCapability returns a capability checking against encodedHash.
// An empty hash or a nil prompter makes the capability unavailable.
func NewPassphraseCapability(encodedHash string, hasher crypto.PassphraseHasher, prompter Prompter) *PassphraseCapability {
	return &PassphraseCapability{
		encodedHash: encodedHash,
		hasher:      hasher,
		prompter:    prompter,
	}
}

func (p *PassphraseCapability) Name() string { return "passphrase" }

func (p *PassphraseCapability) CanEvaluate(context.Context) error {
	if p.encodedHash == "" {
		return fmt.Errorf("%w: no passphrase configured", ErrCapabilityUnavailable)
	}
	if p.prompter == nil {
		return fmt.Errorf("%w: no prompt surface", ErrCapabilityUnavailable)
	}
	return nil
}

func (p *PassphraseCapability) Evaluate(ctx context.Context, reason string, reply func(ok bool, err error)) {
	secret, err := p.prompter.Prompt(ctx, reason)
	if err != nil {
		if errors.Is(err, ErrPromptCancelled) {
			reply(false, fmt.Errorf("%w: %w", ErrChallengeDenied, err))
			return
		}
		reply(false, fmt.Errorf("read passphrase: %w", err))
		return
	}

	ok, err := p.hasher.Verify(secret, p.encodedHash)
	if err != nil {
		reply(false, fmt.Errorf("verify passphrase: %w", err))
		return
	}
	if !ok {
		reply(false, fmt.Errorf("%w: wrong passphrase", ErrChallengeDenied))
		return
	}
	reply(true, nil)
}
