// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/models"
)

// UnlockResult describes how an Unlock call ended.
type UnlockResult struct {
	// Outcome is the authenticator verdict. A call made while already
	// Unlocked reports auth.Authenticated.
	Outcome auth.Outcome

	// Note holds the loaded text when Outcome is auth.Authenticated.
	Note models.Note
}

// Snapshot is a point-in-time copy of controller state.
type Snapshot struct {
	State models.LockState

	// Text is the editable buffer; empty while Locked.
	Text string

	// Authenticating is true while an authentication is outstanding.
	Authenticating bool

	// LastActivity is the time of the last unlock or edit.
	LastActivity time.Time

	// LastSaveErr is the error of the most recent save, nil when it
	// succeeded or no save happened yet. Background locks report failures
	// through it.
	LastSaveErr error
}
