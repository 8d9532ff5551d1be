// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/zalando/go-keyring"
)

// keyringNoteStore keeps notes in the OS credential store (macOS Keychain,
// Secret Service, Windows Credential Manager). The namespace is the keyring
// service name and the note key is the account.
type keyringNoteStore struct {
	namespace string
	logger    *logger.Logger
}

// NewKeyringNoteStore returns a [NoteStore] backed by the OS keyring.
func NewKeyringNoteStore(namespace string, log *logger.Logger) NoteStore {
	log.Debug().Str("namespace", namespace).Msg("creating keyring note store")
	return &keyringNoteStore{
		namespace: namespace,
		logger:    log,
	}
}

func (k *keyringNoteStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	value, err := keyring.Get(k.namespace, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "keyringNoteStore.Get").
			Str("namespace", k.namespace).
			Str("key", key).
			Msg("failed to read note from keyring")
		return "", fmt.Errorf("failed to read note from keyring: %w", err)
	}

	return value, nil
}

func (k *keyringNoteStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if err := keyring.Set(k.namespace, key, value); err != nil {
		log.Err(err).
			Str("func", "keyringNoteStore.Set").
			Str("namespace", k.namespace).
			Str("key", key).
			Msg("failed to write note to keyring")
		return fmt.Errorf("%w: keyring: %w", ErrNoteNotSaved, err)
	}

	return nil
}
