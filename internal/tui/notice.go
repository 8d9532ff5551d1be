// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-lockpad/internal/app"
)

// noticeModel is a dialog with a single OK action.
type noticeModel struct {
	notice app.Notice
}

func (m noticeModel) View() string {
	content := titleStyle.Render(m.notice.Title) + "\n\n" + m.notice.Message + "\n\n" + helpStyle.Render("enter: OK")
	return overlayBoxStyle.Render(content)
}

// passphraseModel is the masked input dialog opened by the passphrase
// capability. Exactly one reply is sent on reply.
type passphraseModel struct {
	reason string
	input  textinput.Model
	reply  chan<- passphraseReply
}

func newPassphraseModel(req passphraseRequestMsg) passphraseModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Width = 40
	input.Focus()

	return passphraseModel{reason: req.reason, input: input, reply: req.reply}
}

func (m passphraseModel) View() string {
	content := titleStyle.Render(m.reason) + "\n\n" + m.input.View() + "\n\n" + helpStyle.Render("enter: unlock  esc: cancel")
	return overlayBoxStyle.Render(content)
}
