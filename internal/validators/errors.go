// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteKey = errors.New("note key is required")
	ErrInvalidText  = errors.New("note text is not valid UTF-8")
	ErrNoteTooLarge = errors.New("note text is too large")
)
