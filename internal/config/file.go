// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
type fileConfig struct {
	Storage struct {
		Backend string `json:"backend" yaml:"backend"`
		DB      struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Secret string `json:"secret" yaml:"secret"`
	} `json:"storage" yaml:"storage"`

	Note struct {
		Namespace   string   `json:"namespace" yaml:"namespace"`
		Key         string   `json:"key" yaml:"key"`
		DefaultText string   `json:"default_text" yaml:"default_text"`
		AutoLock    Duration `json:"auto_lock" yaml:"auto_lock"`
	} `json:"note" yaml:"note"`

	Auth struct {
		Method         string `json:"method" yaml:"method"`
		Reason         string `json:"reason" yaml:"reason"`
		PassphraseHash string `json:"passphrase_hash" yaml:"passphrase_hash"`
	} `json:"auth" yaml:"auth"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Backend: fc.Storage.Backend,
			DB:      DB{DSN: fc.Storage.DB.DSN},
			Secret:  fc.Storage.Secret,
		},
		Note: Note{
			Namespace:   fc.Note.Namespace,
			Key:         fc.Note.Key,
			DefaultText: fc.Note.DefaultText,
			AutoLock:    time.Duration(fc.Note.AutoLock),
		},
		Auth: Auth{
			Method:         fc.Auth.Method,
			Reason:         fc.Auth.Reason,
			PassphraseHash: fc.Auth.PassphraseHash,
		},
		Log: Log{
			File:  fc.Log.File,
			Level: fc.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(s); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
