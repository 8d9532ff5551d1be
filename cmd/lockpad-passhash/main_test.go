package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lockpad/internal/crypto"
)

func TestRun(t *testing.T) {
	hasher := crypto.NewPassphraseHasher()

	tests := []struct {
		name    string
		input   string
		wantErr error
		errText string
	}{
		{name: "match", input: "hunter2\nhunter2\n"},
		{name: "mismatch", input: "hunter2\nhunter3\n", wantErr: errMismatch},
		{name: "empty", input: "\n\n", errText: "must not be empty"},
		{name: "short input", input: "hunter2\n", wantErr: io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(lineReader(strings.NewReader(tt.input)), &out, hasher)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
				encoded := strings.TrimSpace(out.String())
				assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

				ok, err := hasher.Verify("hunter2", encoded)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}
