package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-lockpad/internal/logger"
)

func TestKeyringNoteStore(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()
	s := NewKeyringNoteStore("go-lockpad-test", logger.Nop())

	_, err := s.Get(ctx, "lockedText")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	require.NoError(t, s.Set(ctx, "lockedText", "first"))
	require.NoError(t, s.Set(ctx, "lockedText", "second"))

	text, err := s.Get(ctx, "lockedText")
	require.NoError(t, err)
	assert.Equal(t, "second", text)

	other := NewKeyringNoteStore("another-namespace", logger.Nop())
	_, err = other.Get(ctx, "lockedText")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestKeyringNoteStore_BackendErrors(t *testing.T) {
	keyring.MockInitWithError(errors.New("keychain locked"))
	t.Cleanup(keyring.MockInit)
	ctx := context.Background()
	s := NewKeyringNoteStore("go-lockpad-test", logger.Nop())

	err := s.Set(ctx, "lockedText", "value")
	assert.ErrorIs(t, err, ErrNoteNotSaved)

	_, err = s.Get(ctx, "lockedText")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
}

func TestMemoryNoteStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryNoteStore()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	require.NoError(t, s.Set(ctx, "k", ""))
	text, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", text, "an empty value is stored, not treated as absent")
}
