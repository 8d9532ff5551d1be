// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/go-lockpad/internal/service"
)

// editQueue hands buffer changes to the controller in typing order.
// Commands run on their own goroutines, so every change carries the revision
// Update assigned to it and anything older than the last delivered revision
// is dropped.
type editQueue struct {
	mu         sync.Mutex
	delivered  uint64
	controller service.NoteController
}

func newEditQueue(controller service.NoteController) *editQueue {
	return &editQueue{controller: controller}
}

// push delivers text unless a newer revision already reached the controller.
func (q *editQueue) push(revision uint64, text string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if revision <= q.delivered {
		return false, nil
	}
	if err := q.controller.Edit(text); err != nil {
		return false, err
	}
	q.delivered = revision
	return true, nil
}
