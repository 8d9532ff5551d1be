// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-lockpad/internal/auth"
)

// sender is the part of *tea.Program the prompter uses.
type sender interface {
	Send(msg tea.Msg)
}

// PassphrasePrompter implements auth.Prompter by opening a masked input
// dialog inside the running TUI. It is created before the program exists
// and bound to it when the TUI starts.
type PassphrasePrompter struct {
	mu      sync.Mutex
	program sender
	// done is closed when the program is unbound.
	done chan struct{}
}

func NewPassphrasePrompter() *PassphrasePrompter {
	return &PassphrasePrompter{}
}

// bind attaches the running program. bind(nil) detaches it and releases
// every Prompt still waiting for an answer.
func (p *PassphrasePrompter) bind(program sender) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done != nil {
		close(p.done)
		p.done = nil
	}
	p.program = program
	if program != nil {
		p.done = make(chan struct{})
	}
}

// Prompt blocks until the user submits or cancels the dialog, ctx ends, or
// the program goes away.
func (p *PassphrasePrompter) Prompt(ctx context.Context, reason string) (string, error) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.mu.Unlock()

	if program == nil {
		return "", fmt.Errorf("%w: no terminal to prompt on", auth.ErrCapabilityUnavailable)
	}

	reply := make(chan passphraseReply, 1)
	program.Send(passphraseRequestMsg{reason: reason, reply: reply})

	select {
	case r := <-reply:
		return r.passphrase, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-done:
		return "", fmt.Errorf("%w: terminal closed", auth.ErrPromptCancelled)
	}
}
