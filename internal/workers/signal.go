// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lockpad/internal/logger"
)

// DefaultSuspendSignals are the signals treated as "the application is going
// to the background or being stopped".
var DefaultSuspendSignals = []os.Signal{syscall.SIGHUP, syscall.SIGTERM}

// SignalWorker locks the note whenever one of its signals arrives.
type SignalWorker struct {
	suspender Suspender
	signals   []os.Signal
	notify    func(c chan<- os.Signal, sig ...os.Signal)
	stop      func(c chan<- os.Signal)
	logger    *logger.Logger
}

// NewSignalWorker returns a worker reacting to signals, or to
// [DefaultSuspendSignals] when none are given.
func NewSignalWorker(suspender Suspender, log *logger.Logger, signals ...os.Signal) *SignalWorker {
	if len(signals) == 0 {
		signals = DefaultSuspendSignals
	}
	return &SignalWorker{
		suspender: suspender,
		signals:   signals,
		notify:    signal.Notify,
		stop:      signal.Stop,
		logger:    log,
	}
}

func (w *SignalWorker) Run(ctx context.Context) error {
	ch := make(chan os.Signal, 1)
	w.notify(ch, w.signals...)
	defer w.stop(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-ch:
			saved, err := w.suspender.Suspend(ctx)
			if err != nil {
				w.logger.Err(err).Str("func", "SignalWorker.Run").Stringer("signal", sig).Msg("suspend failed")
				continue
			}
			w.logger.Info().Str("func", "SignalWorker.Run").Stringer("signal", sig).Bool("saved", saved).Msg("suspended on signal")
		}
	}
}
