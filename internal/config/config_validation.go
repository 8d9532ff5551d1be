// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendKeyring, BackendMemory:
	case BackendSQLite, BackendPostgres:
		if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
			return fmt.Errorf("%w: %s backend requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
		if cfg.Storage.Secret == "" {
			return fmt.Errorf("%w: %s backend requires a storage secret", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if strings.TrimSpace(cfg.Note.Key) == "" || strings.TrimSpace(cfg.Note.Namespace) == "" {
		return fmt.Errorf("%w: key and namespace must not be empty", ErrInvalidNoteConfigs)
	}
	if cfg.Note.AutoLock < 0 {
		return fmt.Errorf("%w: auto-lock must not be negative", ErrInvalidNoteConfigs)
	}

	switch cfg.Auth.Method {
	case AuthMethodAuto, AuthMethodBiometric:
	case AuthMethodPassphrase:
		if cfg.Auth.PassphraseHash == "" {
			return fmt.Errorf("%w: passphrase method requires a passphrase hash", ErrInvalidAuthConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidAuthConfigs, cfg.Auth.Method)
	}

	return nil
}
