// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background sources of suspend events: OS
// signals and inactivity. Each runs until its context is cancelled and
// reacts by asking the note controller to save and lock.
package workers

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is a clean stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Suspender is the part of the note controller the workers drive.
type Suspender interface {
	Suspend(ctx context.Context) (bool, error)
}
