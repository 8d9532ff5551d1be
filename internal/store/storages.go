// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lockpad/internal/config"
	"github.com/MKhiriev/go-lockpad/internal/crypto"
	"github.com/MKhiriev/go-lockpad/internal/logger"
)

// ClientStorages aggregates the note store selected by configuration and the
// resources it owns.
type ClientStorages struct {
	NoteStore NoteStore

	db *DB
}

// NewClientStorages builds the note store named by cfg.Storage.Backend.
// SQL backends are connected and migrated before returning.
func NewClientStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("backend", cfg.Storage.Backend).Msg("creating note store")

	switch cfg.Storage.Backend {
	case config.BackendKeyring:
		return &ClientStorages{NoteStore: NewKeyringNoteStore(cfg.Note.Namespace, log)}, nil
	case config.BackendMemory:
		return &ClientStorages{NoteStore: NewMemoryNoteStore()}, nil
	case config.BackendSQLite, config.BackendPostgres:
		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewClientStorages").Msg("failed to migrate database")
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return &ClientStorages{
			NoteStore: NewSQLNoteStore(db, cfg.Note.Namespace, cfg.Storage.Secret, crypto.NewKeyChainService(), log),
			db:        db,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}
}

func connect(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*DB, error) {
	if cfg.Storage.Backend == config.BackendPostgres {
		return NewConnectPostgres(ctx, cfg.Storage.DB, log)
	}
	return NewConnectSQLite(ctx, cfg.Storage.DB, log)
}

// Close releases the database connection, if any.
func (c *ClientStorages) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
