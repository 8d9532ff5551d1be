// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the note controller event loop, and the
// background suspend workers into a single process lifecycle, and makes sure
// an unlocked note is saved before the process exits.
package client
