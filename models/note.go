// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the plain data types shared between the storage,
// service, and presentation layers of go-lockpad.
package models

// DefaultNoteText is shown when a note is unlocked for the first time and the
// store holds no value under the configured key yet. It is never persisted on
// its own; only an explicit save writes it.
const DefaultNoteText = "This is a locked textpad. Update the text and then press Done to save it. " +
	"You will need to unlock it with Touch ID to view it again."

// DefaultNoteKey is the key the note is stored under unless configured otherwise.
const DefaultNoteKey = "lockedText"

// DefaultNamespace is the store namespace (keyring service name, SQL
// namespace column) used unless configured otherwise.
const DefaultNamespace = "go-lockpad"

// Note is the single protected text value.
type Note struct {
	// Key identifies the note inside its namespace.
	Key string
	// Text is the plaintext body. It only exists in memory while unlocked.
	Text string
}
