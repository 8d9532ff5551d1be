// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-lockpad/models"
)

const (
	FieldKey  = "key"
	FieldText = "text"
)

// MaxNoteBytes bounds the size of a note. OS credential stores reject large
// secrets, and the note is meant to be small.
const MaxNoteBytes = 64 * 1024

type NoteValidator struct {
	maxBytes int
}

func NewNoteValidator() Validator {
	return &NoteValidator{maxBytes: MaxNoteBytes}
}

// Validate checks a models.Note. With no fields every rule applies.
func (v *NoteValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldText}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if strings.TrimSpace(note.Key) == "" {
				return ErrEmptyNoteKey
			}
		case FieldText:
			if !utf8.ValidString(note.Text) {
				return ErrInvalidText
			}
			if len(note.Text) > v.maxBytes {
				return fmt.Errorf("%w: %d bytes, limit %d", ErrNoteTooLarge, len(note.Text), v.maxBytes)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
