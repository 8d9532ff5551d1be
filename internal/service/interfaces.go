// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteController owns the Locked/Unlocked lifecycle of the protected note.
// All methods are safe for concurrent use; they hand their request to the
// controller's event loop and wait for it to be handled.
type NoteController interface {
	// Run executes the event loop until ctx is cancelled. Every other method
	// returns [ErrControllerStopped] once Run has exited.
	Run(ctx context.Context) error

	// Unlock authenticates the owner and loads the note. While Unlocked it
	// returns the current buffer without authenticating again. A second call
	// while an authentication is outstanding fails with
	// [ErrAuthenticationInProgress]. ctx bounds only how long the caller
	// waits; the authentication itself is never cancelled.
	Unlock(ctx context.Context) (UnlockResult, error)

	// Edit replaces the editable buffer. It is ignored while Locked.
	Edit(text string) error

	// Save persists the buffer and locks. While Locked it is a no-op that
	// returns (false, nil). A store failure still locks and is returned
	// wrapped in store.ErrNoteNotSaved.
	Save(ctx context.Context) (bool, error)

	// Suspend reacts to the application being backgrounded or stopped. It
	// behaves exactly like Save.
	Suspend(ctx context.Context) (bool, error)

	// Snapshot returns a copy of the controller state.
	Snapshot(ctx context.Context) (Snapshot, error)
}
