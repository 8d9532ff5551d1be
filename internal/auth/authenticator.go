// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-lockpad/internal/logger"
)

type authenticator struct {
	capability Capability
	reason     string
	logger     *logger.Logger
}

// NewAuthenticator wraps capability. reason is the justification string shown
// by the platform prompt.
func NewAuthenticator(capability Capability, reason string, log *logger.Logger) Authenticator {
	return &authenticator{
		capability: capability,
		reason:     reason,
		logger:     log,
	}
}

func (a *authenticator) AuthenticateAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- a.Authenticate(ctx)
	}()
	return out
}

func (a *authenticator) Authenticate(ctx context.Context) Result {
	name := a.capability.Name()

	if err := a.capability.CanEvaluate(ctx); err != nil {
		if !errors.Is(err, ErrCapabilityUnavailable) {
			err = fmt.Errorf("%w: %w", ErrCapabilityUnavailable, err)
		}
		a.logger.Info().Str("func", "authenticator.Authenticate").Str("capability", name).
			Err(err).Msg("capability unavailable")
		return Result{Outcome: Unavailable, Err: err}
	}

	c := newCompletion()
	go func() {
		a.capability.Evaluate(ctx, a.reason, func(ok bool, err error) {
			if !c.deliver(resultOf(ok, err)) {
				a.logger.Warn().Str("func", "authenticator.Authenticate").Str("capability", name).
					Msg("dropped extra completion")
			}
		})
		if c.deliver(Result{Outcome: Failed, Err: ErrNoCompletion}) {
			a.logger.Warn().Str("func", "authenticator.Authenticate").Str("capability", name).
				Msg("capability returned without a result")
		}
	}()

	var res Result
	select {
	case res = <-c.ch:
	case <-ctx.Done():
		c.deliver(Result{Outcome: Failed, Err: ctx.Err()})
		res = <-c.ch
	}

	a.logger.Info().Str("func", "authenticator.Authenticate").Str("capability", name).
		Stringer("outcome", res.Outcome).Msg("authentication finished")
	return res
}

// completion accepts the first delivered result and rejects the rest.
type completion struct {
	once sync.Once
	ch   chan Result
}

func newCompletion() *completion {
	return &completion{ch: make(chan Result, 1)}
}

func (c *completion) deliver(r Result) bool {
	delivered := false
	c.once.Do(func() {
		c.ch <- r
		delivered = true
	})
	return delivered
}
