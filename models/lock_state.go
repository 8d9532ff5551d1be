// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LockState is the visible state of the note.
type LockState int

const (
	// Locked hides the note. It is the initial state.
	Locked LockState = iota
	// Unlocked exposes the note for editing until the next save.
	Unlocked
)

func (s LockState) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
