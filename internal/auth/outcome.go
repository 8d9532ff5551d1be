// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
)

// Outcome classifies a finished authentication attempt.
type Outcome int

const (
	// Authenticated means the owner proved their identity.
	Authenticated Outcome = iota
	// Unavailable means the capability is missing on this device.
	Unavailable
	// Denied means the user failed or cancelled the challenge.
	Denied
	// Failed means the attempt broke for another reason, see Result.Err.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Authenticated:
		return "authenticated"
	case Unavailable:
		return "unavailable"
	case Denied:
		return "denied"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the single completion of an authentication attempt.
type Result struct {
	Outcome Outcome
	// Err is nil for Authenticated and carries the reason otherwise.
	Err error
}

// OK reports whether the owner was authenticated.
func (r Result) OK() bool {
	return r.Outcome == Authenticated
}

// resultOf maps a raw capability reply to a Result.
func resultOf(ok bool, err error) Result {
	switch {
	case err == nil && ok:
		return Result{Outcome: Authenticated}
	case err == nil:
		return Result{Outcome: Denied, Err: ErrChallengeDenied}
	case errors.Is(err, ErrCapabilityUnavailable):
		return Result{Outcome: Unavailable, Err: err}
	case errors.Is(err, ErrChallengeDenied):
		return Result{Outcome: Denied, Err: err}
	default:
		return Result{Outcome: Failed, Err: err}
	}
}
