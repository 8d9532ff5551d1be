// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by note stores. Callers should use [errors.Is].
var (
	// ErrNoteNotFound is returned when nothing is stored under the key yet.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteNotSaved wraps every failure to persist a note.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrStorageUnavailable marks transient failures of the storage medium
	// (lost connection, locked database).
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrWrongSecret is returned when the configured storage secret cannot
	// unwrap the namespace data key.
	ErrWrongSecret = errors.New("storage secret does not match")

	// ErrUnknownBackend is returned for an unsupported storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors wrapped by the SQL note store.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a statement.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")

	// ErrCorruptedVaultKey is returned when the stored salt or wrapped data
	// key is not valid base64.
	ErrCorruptedVaultKey = errors.New("vault key is corrupted")
)
