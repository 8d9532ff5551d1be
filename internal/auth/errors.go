// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrCapabilityUnavailable means the device lacks the required
	// authentication capability. Callers show a notice and do nothing else.
	ErrCapabilityUnavailable = errors.New("owner authentication is not available on this device")

	// ErrChallengeDenied means the user failed or cancelled the challenge.
	ErrChallengeDenied = errors.New("owner authentication was denied")

	// ErrNoCompletion is the result of a capability that returned from
	// Evaluate without ever replying.
	ErrNoCompletion = errors.New("authentication finished without a result")

	// ErrPromptCancelled is returned by a [Prompter] when the user backs out.
	ErrPromptCancelled = errors.New("prompt cancelled")
)
