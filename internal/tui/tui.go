// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of go-lockpad: a locked screen, an
// edit screen, single-action notice dialogs, and the masked passphrase
// prompt used by the passphrase capability.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	controller service.NoteController
	prompter   *PassphrasePrompter
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

// New returns a TUI over controller. prompter is bound to the running
// program so that passphrase requests open a dialog; it may be nil when the
// passphrase capability is not configured.
func New(controller service.NoteController, prompter *PassphrasePrompter, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		controller: controller,
		prompter:   prompter,
		buildInfo:  buildInfo,
		logger:     log,
	}, nil
}

// Run shows the locked screen and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.controller, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if t.prompter != nil {
		t.prompter.bind(program)
		defer t.prompter.bind(nil)
	}

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
