// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backends accepted by [Storage.Backend].
const (
	BackendKeyring  = "keyring"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Authentication methods accepted by [Auth.Method].
const (
	AuthMethodAuto       = "auto"
	AuthMethodBiometric  = "biometric"
	AuthMethodPassphrase = "passphrase"
)

// StructuredConfig is the top-level configuration container for go-lockpad.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects and configures the secure note store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Note holds the identity of the protected note and its lifecycle knobs.
	Note Note `envPrefix:"NOTE_"`

	// Auth selects the owner-authentication capability.
	Auth Auth `envPrefix:"AUTH_"`

	// Log controls where and how verbosely the client logs.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded into the
	// process environment before env parsing. Env: ENV_FILE, flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// Storage holds the note store settings.
type Storage struct {
	// Backend is one of keyring, sqlite, postgres, memory.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds SQL connection settings for the sqlite and postgres backends.
	DB DB `envPrefix:"DB_"`

	// Secret is the passphrase the SQL backends derive their key-encryption
	// key from. Ignored by the keyring backend, which relies on the OS.
	// Env: STORAGE_SECRET
	Secret string `env:"SECRET"`
}

// DB holds SQL connection settings.
type DB struct {
	// DSN is a sqlite file path or a PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Note identifies the protected note.
type Note struct {
	// Namespace scopes the key: keyring service name, SQL namespace column.
	// Env: NOTE_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// Key is the fixed identifier of the note. Env: NOTE_KEY
	Key string `env:"KEY"`

	// DefaultText is shown on first unlock when nothing is stored yet.
	// Env: NOTE_DEFAULT_TEXT
	DefaultText string `env:"DEFAULT_TEXT"`

	// AutoLock saves and locks an unlocked note after this much inactivity.
	// Zero disables it. Env: NOTE_AUTO_LOCK
	AutoLock time.Duration `env:"AUTO_LOCK"`
}

// Auth selects the owner-authentication capability.
type Auth struct {
	// Method is one of auto, biometric, passphrase. Env: AUTH_METHOD
	Method string `env:"METHOD"`

	// Reason is the human-readable justification shown by the platform
	// prompt. Env: AUTH_REASON
	Reason string `env:"REASON"`

	// PassphraseHash is the argon2id encoded hash checked by the passphrase
	// capability (see cmd/lockpad-passhash). Env: AUTH_PASSPHRASE_HASH
	PassphraseHash string `env:"PASSPHRASE_HASH"`
}

// Log controls client logging.
type Log struct {
	// File is the log file path. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load is [GetStructuredConfig] with explicit command-line arguments.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withFlags(args).
		withDotEnv().
		withEnv().
		withFile().
		build()
}
