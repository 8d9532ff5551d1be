// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of go-lockpad.
//
// All Msg* constants are the titles and bodies shown in notice dialogs.
// Keeping them in one place ensures consistent wording across screens, and
// [NoticeFor] is the single mapping from an error to what the user reads.
package app

import (
	"errors"

	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/internal/store"
	"github.com/MKhiriev/go-lockpad/internal/validators"
)

const (
	// MsgCapabilityUnavailableTitle is shown when the device cannot evaluate
	// the authentication policy at all.
	MsgCapabilityUnavailableTitle = "Touch ID not available"

	// MsgCapabilityUnavailable explains the unavailable dialog.
	MsgCapabilityUnavailable = "Your device is not configured for Touch ID."

	// MsgTextSavedTitle is shown after a successful save.
	MsgTextSavedTitle = "Text Saved"

	// MsgTextSaved explains the saved dialog.
	MsgTextSaved = "Your text has been saved. Unlock to edit again."

	// MsgTextNotSavedTitle is shown when the store rejected the write. The
	// note is locked regardless.
	MsgTextNotSavedTitle = "Text Not Saved"

	// MsgTextNotSaved explains the failed-save dialog.
	MsgTextNotSaved = "Your text could not be saved. Your previous text is unchanged."

	// MsgTextTooLarge is shown when the note exceeds the size a store accepts.
	MsgTextTooLarge = "Your text is too long to be saved."

	// MsgStorageUnavailable is shown when the storage medium is temporarily
	// unreachable.
	MsgStorageUnavailable = "Secure storage is unavailable right now. Try again later."

	// MsgUnlockFailedTitle is shown when authentication succeeded but the
	// note could not be loaded, or the attempt failed unexpectedly.
	MsgUnlockFailedTitle = "Unlock Failed"

	// MsgWrongSecret is shown when the storage secret cannot open the vault.
	MsgWrongSecret = "The storage secret does not match this vault."

	// MsgUnlockFailed is the generic unlock failure body.
	MsgUnlockFailed = "The textpad could not be unlocked."

	// MsgAuthenticationInProgress is shown when the user asks to unlock while
	// a prompt is already open.
	MsgAuthenticationInProgress = "Authentication is already in progress."

	// MsgLockedAndSaved is the status line shown when the note was locked
	// and saved in the background.
	MsgLockedAndSaved = "Locked and saved."

	// MsgEditNotApplied is the status line shown when a change could not be
	// handed to the note controller.
	MsgEditNotApplied = "Your last change could not be applied."

	// MsgClipboardTitle and MsgCopied report the copy action.
	MsgClipboardTitle = "Clipboard"
	MsgCopied         = "Your text has been copied to the clipboard."
	MsgCopyFailed     = "Your text could not be copied to the clipboard."
)

// Notice is a dialog with a title, a message, and a single OK action.
type Notice struct {
	Title   string
	Message string
}

// NoticeFor maps an error returned by the note controller to the dialog the
// user should see. ok is false when the error needs no dialog: nil, a denied
// or cancelled challenge.
func NoticeFor(err error) (notice Notice, ok bool) {
	switch {
	case err == nil:
		return Notice{}, false
	case errors.Is(err, auth.ErrChallengeDenied), errors.Is(err, auth.ErrPromptCancelled):
		return Notice{}, false
	case errors.Is(err, auth.ErrCapabilityUnavailable):
		return Notice{Title: MsgCapabilityUnavailableTitle, Message: MsgCapabilityUnavailable}, true
	case errors.Is(err, service.ErrAuthenticationInProgress):
		return Notice{Title: MsgUnlockFailedTitle, Message: MsgAuthenticationInProgress}, true
	case errors.Is(err, validators.ErrNoteTooLarge):
		return Notice{Title: MsgTextNotSavedTitle, Message: MsgTextTooLarge}, true
	case errors.Is(err, store.ErrNoteNotSaved) && errors.Is(err, store.ErrStorageUnavailable):
		return Notice{Title: MsgTextNotSavedTitle, Message: MsgStorageUnavailable}, true
	case errors.Is(err, store.ErrNoteNotSaved):
		return Notice{Title: MsgTextNotSavedTitle, Message: MsgTextNotSaved}, true
	case errors.Is(err, store.ErrWrongSecret):
		return Notice{Title: MsgUnlockFailedTitle, Message: MsgWrongSecret}, true
	case errors.Is(err, store.ErrStorageUnavailable):
		return Notice{Title: MsgUnlockFailedTitle, Message: MsgStorageUnavailable}, true
	default:
		return Notice{Title: MsgUnlockFailedTitle, Message: MsgUnlockFailed}, true
	}
}

// SavedNotice is the dialog shown after a successful save.
func SavedNotice() Notice {
	return Notice{Title: MsgTextSavedTitle, Message: MsgTextSaved}
}
