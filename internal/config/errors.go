// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown backend or a sql backend
	// without DSN or secret.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidNoteConfigs indicates an empty note key or namespace, or a
	// negative auto-lock interval.
	ErrInvalidNoteConfigs = errors.New("invalid note configuration")
	// ErrInvalidAuthConfigs indicates an unknown authentication method or a
	// passphrase method without a passphrase hash.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
