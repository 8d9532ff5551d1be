// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build darwin && cgo

package auth

import (
	"context"
	"fmt"
	"strings"

	touchid "github.com/ansxuman/go-touchid"
)

// BiometricCapability evaluates the device-owner biometric policy through
// the LocalAuthentication framework.
type BiometricCapability struct{}

// NewBiometricCapability returns the platform biometric capability.
func NewBiometricCapability() *BiometricCapability {
	return &BiometricCapability{}
}

func (b *BiometricCapability) Name() string { return "touch-id" }

func (b *BiometricCapability) CanEvaluate(context.Context) error { return nil }

func (b *BiometricCapability) Evaluate(_ context.Context, reason string, reply func(ok bool, err error)) {
	ok, err := touchid.Auth(touchid.DeviceTypeBiometrics, reason)
	switch {
	case err != nil && policyUnavailable(err):
		reply(false, fmt.Errorf("%w: touch id: %w", ErrCapabilityUnavailable, err))
	case err != nil:
		reply(false, fmt.Errorf("touch id: %w", err))
	default:
		reply(ok, nil)
	}
}

// policyUnavailable recognizes LocalAuthentication failures that mean the
// device cannot evaluate the policy at all, as opposed to a failed attempt.
func policyUnavailable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"not available", "not enrolled", "no identities", "passcode not set"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
