// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteStore is an encrypted string key-value store over one namespace.
type NoteStore interface {
	// Get returns the value stored under key. An absent key yields
	// [ErrNoteNotFound], which callers treat as "use the default", not as a
	// failure.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value. Failures wrap
	// [ErrNoteNotSaved].
	Set(ctx context.Context, key, value string) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
