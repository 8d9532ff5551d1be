// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line configuration flags.
//
// Flags:
//
//	-b storage backend (keyring, sqlite, postgres, memory)
//	-d database DSN for sql backends
//	-n note namespace
//	-k note key
//	-m authentication method (auto, biometric, passphrase)
//	-auto-lock inactivity before an unlocked note is saved and locked
//	-c/-config JSON or YAML config file path
//	-env-file dotenv file path
//	-log-file log file path
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var autoLock time.Duration

	fs := flag.NewFlagSet("lockpad", flag.ContinueOnError)
	fs.StringVar(&cfg.Storage.Backend, "b", "", "Storage backend: keyring, sqlite, postgres, memory")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN for sql backends")
	fs.StringVar(&cfg.Note.Namespace, "n", "", "Note namespace")
	fs.StringVar(&cfg.Note.Key, "k", "", "Note key")
	fs.StringVar(&cfg.Auth.Method, "m", "", "Authentication method: auto, biometric, passphrase")
	fs.DurationVar(&autoLock, "auto-lock", 0, "Save and lock after inactivity (e.g. 5m), 0 disables")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", "Dotenv file path")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Note.AutoLock = autoLock

	return &cfg, nil
}
