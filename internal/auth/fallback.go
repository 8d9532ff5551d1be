// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FallbackCapability evaluates with the first of its capabilities that can
// evaluate at the time of the call.
type FallbackCapability struct {
	capabilities []Capability
}

// NewFallbackCapability returns a capability trying capabilities in order.
func NewFallbackCapability(capabilities ...Capability) *FallbackCapability {
	return &FallbackCapability{capabilities: capabilities}
}

func (f *FallbackCapability) Name() string {
	names := make([]string, 0, len(f.capabilities))
	for _, c := range f.capabilities {
		names = append(names, c.Name())
	}
	return strings.Join(names, "|")
}

func (f *FallbackCapability) CanEvaluate(ctx context.Context) error {
	_, err := f.pick(ctx)
	return err
}

func (f *FallbackCapability) Evaluate(ctx context.Context, reason string, reply func(ok bool, err error)) {
	c, err := f.pick(ctx)
	if err != nil {
		reply(false, err)
		return
	}
	c.Evaluate(ctx, reason, reply)
}

func (f *FallbackCapability) pick(ctx context.Context) (Capability, error) {
	var errs []error
	for _, c := range f.capabilities {
		err := c.CanEvaluate(ctx)
		if err == nil {
			return c, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
	}
	if len(errs) == 0 {
		return nil, ErrCapabilityUnavailable
	}
	return nil, errors.Join(errs...)
}
