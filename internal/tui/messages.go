// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-lockpad/internal/service"
)

type unlockedMsg struct {
	result service.UnlockResult
	err    error
}

type savedMsg struct {
	saved bool
	err   error
}

type editFailedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// stateMsg carries a periodic snapshot so the UI notices locks triggered by
// signals or inactivity.
type stateMsg struct {
	snapshot service.Snapshot
	err      error
}

type passphraseRequestMsg struct {
	reason string
	reply  chan<- passphraseReply
}

type passphraseReply struct {
	passphrase string
	err        error
}

type clearStatusMsg struct{}
