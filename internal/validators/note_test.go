// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-lockpad/models"
)

func TestNoteValidator_Validate(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid", obj: models.Note{Key: "lockedText", Text: "hello"}},
		{name: "valid pointer", obj: &models.Note{Key: "lockedText", Text: ""}},
		{name: "empty key", obj: models.Note{Key: " ", Text: "hello"}, wantErr: ErrEmptyNoteKey},
		{name: "empty key ignored when scoped to text", obj: models.Note{Text: "hello"}, fields: []string{FieldText}},
		{name: "invalid utf-8", obj: models.Note{Key: "k", Text: "\xff\xfe"}, wantErr: ErrInvalidText},
		{name: "too large", obj: models.Note{Key: "k", Text: strings.Repeat("a", MaxNoteBytes+1)}, wantErr: ErrNoteTooLarge},
		{name: "at limit", obj: models.Note{Key: "k", Text: strings.Repeat("a", MaxNoteBytes)}},
		{name: "unknown field", obj: models.Note{Key: "k"}, fields: []string{"title"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: "text", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
