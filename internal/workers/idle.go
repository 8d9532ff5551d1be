// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/models"
)

// ActivitySource reports controller state, including the last user activity.
type ActivitySource interface {
	Suspender
	Snapshot(ctx context.Context) (service.Snapshot, error)
}

// IdleLockWorker saves and locks an unlocked note after a period without
// unlock or edit activity.
type IdleLockWorker struct {
	controller ActivitySource
	timeout    time.Duration
	interval   time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// NewIdleLockWorker returns nil when timeout is not positive, which
// [NewWorkers] skips.
func NewIdleLockWorker(controller ActivitySource, timeout time.Duration, log *logger.Logger) Worker {
	if timeout <= 0 {
		return nil
	}

	interval := timeout / 4
	if interval > time.Second {
		interval = time.Second
	}
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}

	return &IdleLockWorker{
		controller: controller,
		timeout:    timeout,
		interval:   interval,
		now:        time.Now,
		logger:     log,
	}
}

func (w *IdleLockWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := w.check(ctx); err != nil {
				if errors.Is(err, service.ErrControllerStopped) {
					return nil
				}
				w.logger.Err(err).Str("func", "IdleLockWorker.Run").Msg("idle check failed")
			}
		}
	}
}

func (w *IdleLockWorker) check(ctx context.Context) error {
	snap, err := w.controller.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap.State != models.Unlocked || w.now().Sub(snap.LastActivity) < w.timeout {
		return nil
	}

	saved, err := w.controller.Suspend(ctx)
	if err != nil {
		return err
	}
	w.logger.Info().Str("func", "IdleLockWorker.check").Dur("idle", w.timeout).Bool("saved", saved).Msg("locked after inactivity")
	return nil
}
