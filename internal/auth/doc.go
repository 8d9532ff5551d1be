// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth turns a platform owner-authentication capability into a
// single, well-defined outcome.
//
// A [Capability] is the platform boundary: a query ("can the device evaluate
// an owner-authentication policy?") and a callback-style command ("evaluate
// it with this justification"). Platform callbacks are not trusted to fire
// exactly once, so [Authenticator] guarantees that every call produces exactly
// one [Result], whatever the capability does.
package auth
