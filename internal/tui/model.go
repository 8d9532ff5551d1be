// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-lockpad/internal/app"
	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/models"
)

const (
	lockedTitle = "Touch ID Textpad"
	editTitle   = "Edit Mode"

	stateWatchInterval = time.Second
)

type screen int

const (
	screenLocked screen = iota
	screenEditor
)

// writeClipboard is swapped in tests.
var (
	clipboardWriteAll = clipboard.WriteAll
	writeClipboard    = clipboardWriteAll
)

type appModel struct {
	ctx        context.Context
	controller service.NoteController
	edits      *editQueue
	buildInfo  models.AppBuildInfo

	currentScreen screen
	editor        textarea.Model
	revision      uint64
	unlocking     bool
	saving        bool
	status        string

	notice        *noticeModel
	prompt        *passphraseModel
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, controller service.NoteController, buildInfo models.AppBuildInfo) appModel {
	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.SetWidth(60)
	editor.SetHeight(12)
	editor.CharLimit = 0

	return appModel{
		ctx:           ctx,
		controller:    controller,
		edits:         newEditQueue(controller),
		buildInfo:     buildInfo,
		currentScreen: screenLocked,
		editor:        editor,
	}
}

func (m appModel) Init() tea.Cmd {
	return cmdWatchState(m.ctx, m.controller)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m.quit()
		}
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.editor.SetWidth(msg.Width - 8)
		}
		if msg.Height > 12 {
			m.editor.SetHeight(msg.Height - 12)
		}
		return m, nil

	case passphraseRequestMsg:
		if m.prompt != nil {
			msg.reply <- passphraseReply{err: fmt.Errorf("%w: another prompt is open", auth.ErrPromptCancelled)}
			return m, nil
		}
		prompt := newPassphraseModel(msg)
		m.prompt = &prompt
		return m, nil

	case unlockedMsg:
		m.unlocking = false
		if msg.err != nil || msg.result.Outcome != auth.Authenticated {
			m.showNotice(msg.err)
			return m, nil
		}
		m.currentScreen = screenEditor
		m.editor.SetValue(msg.result.Note.Text)
		m.editor.Focus()
		return m, textarea.Blink

	case savedMsg:
		m.saving = false
		m.lock()
		if msg.err != nil {
			m.showNotice(msg.err)
			return m, nil
		}
		if msg.saved {
			m.notice = &noticeModel{notice: app.SavedNotice()}
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = &noticeModel{notice: app.Notice{Title: app.MsgClipboardTitle, Message: app.MsgCopyFailed}}
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()

	case editFailedMsg:
		m.status = app.MsgEditNotApplied
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case stateMsg:
		if msg.err != nil {
			return m, nil
		}
		if m.currentScreen == screenEditor && !m.saving && msg.snapshot.State == models.Locked {
			m.lock()
			if notice, ok := app.NoticeFor(msg.snapshot.LastSaveErr); ok {
				m.notice = &noticeModel{notice: notice}
			} else {
				m.status = app.MsgLockedAndSaved
			}
		}
		return m, cmdWatchState(m.ctx, m.controller)
	}

	if m.currentScreen == screenEditor && !m.blocked() {
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m.updatePrompt(msg)
	}
	if m.notice != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.notice = nil
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenLocked:
		switch {
		case key.Matches(msg, keys.enter):
			if m.unlocking {
				return m, nil
			}
			m.unlocking = true
			return m, cmdUnlock(m.ctx, m.controller)
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.quit):
			return m.quit()
		}
		return m, nil

	case screenEditor:
		if m.saving {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.save):
			m.saving = true
			m.editor.Blur()
			m.revision++
			return m, cmdSave(m.ctx, m.controller, m.edits, m.revision, m.editor.Value())
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.editor.Value())
		}
		return m.updateEditor(msg)
	}

	return m, nil
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.editor.Value()

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if after := m.editor.Value(); after != before {
		m.revision++
		return m, tea.Batch(cmd, cmdEdit(m.edits, m.revision, after))
	}
	return m, cmd
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.prompt.reply <- passphraseReply{passphrase: m.prompt.input.Value()}
		m.prompt = nil
		return m, nil
	case key.Matches(msg, keys.esc):
		m.prompt.reply <- passphraseReply{err: auth.ErrPromptCancelled}
		m.prompt = nil
		return m, nil
	}

	prompt := *m.prompt
	var cmd tea.Cmd
	prompt.input, cmd = prompt.input.Update(msg)
	m.prompt = &prompt
	return m, cmd
}

// quit answers an open prompt so the waiting capability does not hang, then
// stops the program.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		m.prompt.reply <- passphraseReply{err: auth.ErrPromptCancelled}
		m.prompt = nil
	}
	m.quitByUser = true
	return m, tea.Quit
}

func (m *appModel) lock() {
	m.currentScreen = screenLocked
	m.editor.Reset()
	m.editor.Blur()
}

func (m *appModel) showNotice(err error) {
	if notice, ok := app.NoticeFor(err); ok {
		m.notice = &noticeModel{notice: notice}
	}
}

func (m appModel) blocked() bool {
	return m.prompt != nil || m.notice != nil || m.showBuildInfo
}

func (m appModel) View() string {
	var page string
	switch {
	case m.showBuildInfo:
		page = renderBuildInfoWindow(m.buildInfo)
	case m.currentScreen == screenEditor:
		page = m.viewEditor()
	default:
		page = m.viewLocked()
	}

	switch {
	case m.prompt != nil:
		page += "\n\n" + m.prompt.View()
	case m.notice != nil:
		page += "\n\n" + m.notice.View()
	}

	return appStyle.Render(page)
}

func (m appModel) viewLocked() string {
	data := "The textpad is locked."
	if m.unlocking {
		data = "Waiting for authentication..."
	}
	if m.status != "" {
		data += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage(lockedTitle, data, "enter: unlock  v: about  q: quit")
}

func (m appModel) viewEditor() string {
	data := m.editor.View()
	if m.saving {
		data += "\n\nSaving..."
	}
	if m.status != "" {
		data += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage(editTitle, data, "ctrl+s: done  ctrl+y: copy")
}

func cmdUnlock(ctx context.Context, controller service.NoteController) tea.Cmd {
	return func() tea.Msg {
		result, err := controller.Unlock(ctx)
		return unlockedMsg{result: result, err: err}
	}
}

// cmdSave pushes the final text under the newest revision before saving, so
// keystroke edits still in flight are dropped instead of overwriting it.
func cmdSave(ctx context.Context, controller service.NoteController, edits *editQueue, revision uint64, text string) tea.Cmd {
	return func() tea.Msg {
		if _, err := edits.push(revision, text); err != nil {
			return savedMsg{err: err}
		}
		saved, err := controller.Save(ctx)
		return savedMsg{saved: saved, err: err}
	}
}

func cmdEdit(edits *editQueue, revision uint64, text string) tea.Cmd {
	return func() tea.Msg {
		if _, err := edits.push(revision, text); err != nil {
			return editFailedMsg{err: err}
		}
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdWatchState(ctx context.Context, controller service.NoteController) tea.Cmd {
	return tea.Tick(stateWatchInterval, func(time.Time) tea.Msg {
		snapshot, err := controller.Snapshot(ctx)
		return stateMsg{snapshot: snapshot, err: err}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
