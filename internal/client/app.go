// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  Runner
	closer   io.Closer
	logger   *logger.Logger
}

// NewApp assembles the runtime. closer releases storage resources after the
// controller has stopped; it may be nil.
func NewApp(services *service.ClientServices, ui UI, workers Runner, closer io.Closer, log *logger.Logger) (*App, error) {
	if services == nil || services.NoteController == nil {
		return nil, errors.New("note controller is required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		closer:   closer,
		logger:   log,
	}, nil
}

// Run starts the controller loop and the workers, then blocks in the UI.
// When the UI returns the note is saved and locked before everything stops.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	controller := a.services.NoteController

	g, gctx := errgroup.WithContext(bgCtx)
	g.Go(func() error {
		return controller.Run(gctx)
	})
	if a.workers != nil {
		g.Go(func() error {
			return a.workers.Run(gctx)
		})
	}

	uiErr := a.ui.Run(bgCtx)

	saved, err := controller.Suspend(context.WithoutCancel(ctx))
	switch {
	case errors.Is(err, service.ErrControllerStopped):
	case err != nil:
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to save note on exit")
	case saved:
		a.logger.Info().Str("func", "App.Run").Msg("note saved on exit")
	}

	cancel()
	if err = g.Wait(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("background component failed")
	}

	if a.closer != nil {
		if err = a.closer.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close storage")
		}
	}

	if errors.Is(uiErr, tui.ErrUserQuit) {
		return nil
	}
	return uiErr
}
