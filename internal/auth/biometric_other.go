// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !darwin || !cgo

package auth

import "context"

// BiometricCapability is unavailable on this platform.
type BiometricCapability struct{}

// NewBiometricCapability returns a capability that always reports
// [ErrCapabilityUnavailable].
func NewBiometricCapability() *BiometricCapability {
	return &BiometricCapability{}
}

func (b *BiometricCapability) Name() string { return "touch-id" }

func (b *BiometricCapability) CanEvaluate(context.Context) error {
	return ErrCapabilityUnavailable
}

func (b *BiometricCapability) Evaluate(_ context.Context, _ string, reply func(ok bool, err error)) {
	reply(false, ErrCapabilityUnavailable)
}
