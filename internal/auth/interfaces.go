// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

// Capability is a platform owner-authentication check.
type Capability interface {
	// Name is a short label used in logs, e.g. "touch-id" or "passphrase".
	Name() string

	// CanEvaluate returns nil when the device can evaluate the policy.
	// Otherwise the error wraps [ErrCapabilityUnavailable].
	CanEvaluate(ctx context.Context) error

	// Evaluate challenges the owner, showing reason, and reports the result
	// through reply before returning. Returning without replying, or
	// replying more than once, is tolerated by [Authenticator].
	Evaluate(ctx context.Context, reason string, reply func(ok bool, err error))
}

// Authenticator resolves an owner-authentication attempt to a [Result].
type Authenticator interface {
	// Authenticate blocks until the attempt completes and returns its result.
	Authenticate(ctx context.Context) Result

	// AuthenticateAsync starts an attempt and returns a channel that yields
	// exactly one result and is then closed.
	AuthenticateAsync(ctx context.Context) <-chan Result
}

// Prompter asks the user for a secret. The passphrase capability uses it.
type Prompter interface {
	// Prompt shows reason and returns what the user typed, or an error
	// wrapping [ErrPromptCancelled] when the user backs out.
	Prompt(ctx context.Context, reason string) (string, error)
}
