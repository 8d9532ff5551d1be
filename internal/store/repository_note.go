// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-lockpad/internal/crypto"
	"github.com/MKhiriev/go-lockpad/internal/logger"
)

// sqlNoteStore is the sqlite/PostgreSQL implementation of [NoteStore].
//
// Every note is sealed with the namespace data key (DEK) before it reaches
// the database. The DEK itself is stored wrapped by a key-encryption key
// derived from the storage secret, so the database never holds anything
// readable on its own. The DEK is unwrapped lazily on first use and cached.
type sqlNoteStore struct {
	*DB
	namespace string
	secret    string
	keychain  crypto.KeyChainService
	now       func() time.Time

	mu  sync.Mutex
	dek []byte

	logger *logger.Logger
}

// NewSQLNoteStore returns a [NoteStore] over db scoped to namespace.
func NewSQLNoteStore(db *DB, namespace, secret string, keychain crypto.KeyChainService, log *logger.Logger) NoteStore {
	return &sqlNoteStore{
		DB:        db,
		namespace: namespace,
		secret:    secret,
		keychain:  keychain,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    log,
	}
}

func (s *sqlNoteStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	dek, err := s.dataKey(ctx)
	if err != nil {
		return "", err
	}

	query, args, err := buildGetNoteQuery(s.builder, s.namespace, key)
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStore.Get").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed string
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "sqlNoteStore.Get").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to read note")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}

	text, err := s.keychain.Open(sealed, dek, s.additionalData(key))
	if err != nil {
		log.Err(err).
			Str("func", "sqlNoteStore.Get").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to open sealed note")
		return "", fmt.Errorf("failed to open sealed note: %w", err)
	}

	return text, nil
}

func (s *sqlNoteStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	dek, err := s.dataKey(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoteNotSaved, err)
	}

	sealed, err := s.keychain.Seal(value, dek, s.additionalData(key))
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStore.Set").Msg("failed to seal note")
		return fmt.Errorf("%w: %w", ErrNoteNotSaved, err)
	}

	query, args, err := buildUpsertNoteQuery(s.builder, s.namespace, key, sealed, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqlNoteStore.Set").Msg("failed to build query")
		return fmt.Errorf("%w: %w: %w", ErrNoteNotSaved, ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlNoteStore.Set").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to upsert note")
		return fmt.Errorf("%w: %w: %w", ErrNoteNotSaved, ErrExecutingQuery, s.classify(err))
	}

	return nil
}

// additionalData binds a sealed note to its location so a blob copied under
// another key fails to open.
func (s *sqlNoteStore) additionalData(key string) []byte {
	return []byte(s.namespace + "/" + key)
}

// dataKey returns the namespace DEK, creating and storing it on first use.
func (s *sqlNoteStore) dataKey(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dek != nil {
		return s.dek, nil
	}

	salt, wrapped, err := s.loadVaultKey(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		salt, wrapped, err = s.createVaultKey(ctx)
	}
	if err != nil {
		return nil, err
	}

	kek := s.keychain.GenerateKEK(s.secret, salt)
	dek, err := s.keychain.UnwrapDEK(wrapped, kek)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlNoteStore.dataKey").
			Str("namespace", s.namespace).
			Msg("failed to unwrap data key")
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return nil, ErrWrongSecret
		}
		return nil, fmt.Errorf("failed to unwrap data key: %w", err)
	}

	s.dek = dek
	return dek, nil
}

func (s *sqlNoteStore) loadVaultKey(ctx context.Context) (salt, wrapped []byte, err error) {
	query, args, err := buildGetVaultKeyQuery(s.builder, s.namespace)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var encodedSalt, encodedWrapped string
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&encodedSalt, &encodedWrapped); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, err
		}
		s.logger.Err(err).Str("func", "sqlNoteStore.loadVaultKey").Msg("failed to read vault key")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}

	if salt, err = base64.StdEncoding.DecodeString(encodedSalt); err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %w", ErrCorruptedVaultKey, err)
	}
	if wrapped, err = base64.StdEncoding.DecodeString(encodedWrapped); err != nil {
		return nil, nil, fmt.Errorf("%w: wrapped key: %w", ErrCorruptedVaultKey, err)
	}

	return salt, wrapped, nil
}

// createVaultKey generates a fresh salt and DEK for the namespace. When
// another process created one first, the stored row wins and is returned.
func (s *sqlNoteStore) createVaultKey(ctx context.Context) (salt, wrapped []byte, err error) {
	salt, err = s.keychain.GenerateEncryptionSalt()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	dek, err := s.keychain.GenerateDEK()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate data key: %w", err)
	}
	wrapped, err = s.keychain.WrapDEK(dek, s.keychain.GenerateKEK(s.secret, salt))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to wrap data key: %w", err)
	}

	query, args, err := buildInsertVaultKeyQuery(s.builder, s.namespace,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(wrapped),
		s.now(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlNoteStore.createVaultKey").Msg("failed to store vault key")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.classify(err))
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return s.loadVaultKey(ctx)
	}

	s.logger.Info().Str("namespace", s.namespace).Msg("created vault key")
	return salt, wrapped, nil
}
