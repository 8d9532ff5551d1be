// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// MemoryNoteStore keeps notes in process memory. Nothing survives a restart.
type MemoryNoteStore struct {
	mu    sync.RWMutex
	notes map[string]string
}

// NewMemoryNoteStore returns an empty [MemoryNoteStore].
func NewMemoryNoteStore() *MemoryNoteStore {
	return &MemoryNoteStore{notes: make(map[string]string)}
}

func (m *MemoryNoteStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.notes[key]
	if !ok {
		return "", ErrNoteNotFound
	}
	return value, nil
}

func (m *MemoryNoteStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notes[key] = value
	return nil
}
