// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for go-lockpad.
//
// Configuration is assembled from multiple sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Config file (JSON or YAML, chosen by extension)
//  3. Environment variables, optionally seeded from a .env file
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
