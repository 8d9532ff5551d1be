// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lockpad/internal/app"
	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/internal/config"
	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/mock"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/internal/store"
	"github.com/MKhiriev/go-lockpad/models"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	saveKey  = tea.KeyMsg{Type: tea.KeyCtrlS}
	copyKey  = tea.KeyMsg{Type: tea.KeyCtrlY}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (appModel, *mock.MockNoteController) {
	t.Helper()
	ctrl := gomock.NewController(t)
	controller := mock.NewMockNoteController(ctrl)
	return newAppModel(context.Background(), controller, models.NewAppBuildInfo("1.0.0", "", "")), controller
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(appModel)
	require.True(t, ok)
	return result, cmd
}

func unlockedModel(t *testing.T, text string) (appModel, *mock.MockNoteController) {
	t.Helper()
	m, controller := newTestModel(t)
	m, _ = update(t, m, unlockedMsg{result: service.UnlockResult{
		Outcome: auth.Authenticated,
		Note:    models.Note{Key: models.DefaultNoteKey, Text: text},
	}})
	require.Equal(t, screenEditor, m.currentScreen)
	return m, controller
}

func TestAppModel_EnterUnlocks(t *testing.T) {
	m, controller := newTestModel(t)
	controller.EXPECT().Unlock(gomock.Any()).Return(service.UnlockResult{
		Outcome: auth.Authenticated,
		Note:    models.Note{Key: models.DefaultNoteKey, Text: models.DefaultNoteText},
	}, nil)

	assert.Contains(t, m.View(), "Touch ID Textpad")

	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.unlocking)

	// a second enter while waiting does not start another attempt
	m, again := update(t, m, enterKey)
	assert.Nil(t, again)

	m, _ = update(t, m, cmd())
	assert.False(t, m.unlocking)
	assert.Equal(t, screenEditor, m.currentScreen)
	assert.Equal(t, models.DefaultNoteText, m.editor.Value())
	assert.Contains(t, m.View(), "Edit Mode")
}

func TestAppModel_UnavailableShowsNotice(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, unlockedMsg{
		result: service.UnlockResult{Outcome: auth.Unavailable},
		err:    fmt.Errorf("%w: no sensor", auth.ErrCapabilityUnavailable),
	})

	assert.Equal(t, screenLocked, m.currentScreen)
	require.NotNil(t, m.notice)
	assert.Equal(t, app.MsgCapabilityUnavailableTitle, m.notice.notice.Title)
	assert.Contains(t, m.View(), "Your device is not configured for Touch ID.")

	m, _ = update(t, m, enterKey)
	assert.Nil(t, m.notice, "OK dismisses the notice")
	assert.Equal(t, screenLocked, m.currentScreen)
}

func TestAppModel_DeniedStaysLockedSilently(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, unlockedMsg{
		result: service.UnlockResult{Outcome: auth.Denied},
		err:    auth.ErrChallengeDenied,
	})

	assert.Equal(t, screenLocked, m.currentScreen)
	assert.Nil(t, m.notice)
}

func TestAppModel_TypingForwardsEdits(t *testing.T) {
	m, controller := unlockedModel(t, "")
	controller.EXPECT().Edit("h").Return(nil)

	m, cmd := update(t, m, runes("h"))
	require.NotNil(t, cmd)
	assert.Equal(t, "h", m.editor.Value())

	drain(cmd)
}

func TestAppModel_SaveLocksAndShowsSavedNotice(t *testing.T) {
	m, controller := unlockedModel(t, "hello")
	gomock.InOrder(
		controller.EXPECT().Edit("hello").Return(nil),
		controller.EXPECT().Save(gomock.Any()).Return(true, nil),
	)

	m, cmd := update(t, m, saveKey)
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenLocked, m.currentScreen)
	assert.Empty(t, m.editor.Value(), "the buffer is discarded on lock")
	require.NotNil(t, m.notice)
	assert.Equal(t, app.SavedNotice(), m.notice.notice)
}

func TestAppModel_SaveFailureShowsNoticeAndLocks(t *testing.T) {
	m, controller := unlockedModel(t, "hello")
	controller.EXPECT().Edit("hello").Return(nil)
	controller.EXPECT().Save(gomock.Any()).Return(false, fmt.Errorf("%w: keyring locked", store.ErrNoteNotSaved))

	m, cmd := update(t, m, saveKey)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenLocked, m.currentScreen)
	require.NotNil(t, m.notice)
	assert.Equal(t, app.MsgTextNotSavedTitle, m.notice.notice.Title)
}

func TestAppModel_CopyToClipboard(t *testing.T) {
	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = clipboardWriteAll })

	m, _ := unlockedModel(t, "secret")
	m, cmd := update(t, m, copyKey)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, "secret", copied)
	assert.Equal(t, app.MsgCopied, m.status)
}

func TestAppModel_CopyFailure(t *testing.T) {
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { writeClipboard = clipboardWriteAll })

	m, _ := unlockedModel(t, "secret")
	_, cmd := update(t, m, copyKey)
	m, _ = update(t, m, cmd())

	require.NotNil(t, m.notice)
	assert.Equal(t, app.MsgCopyFailed, m.notice.notice.Message)
}

func TestAppModel_ExternalLockReturnsToLockedScreen(t *testing.T) {
	m, _ := unlockedModel(t, "draft")

	m, cmd := update(t, m, stateMsg{snapshot: service.Snapshot{State: models.Locked}})
	assert.NotNil(t, cmd, "watching continues")
	assert.Equal(t, screenLocked, m.currentScreen)
	assert.Empty(t, m.editor.Value())
	assert.Equal(t, app.MsgLockedAndSaved, m.status)
	assert.Nil(t, m.notice)
}

func TestAppModel_BackgroundSaveFailureShowsNotice(t *testing.T) {
	m, _ := unlockedModel(t, "draft")

	m, _ = update(t, m, stateMsg{snapshot: service.Snapshot{
		State:       models.Locked,
		LastSaveErr: fmt.Errorf("%w: disk gone", store.ErrNoteNotSaved),
	}})

	assert.Equal(t, screenLocked, m.currentScreen)
	assert.Empty(t, m.status)
	require.NotNil(t, m.notice)
	assert.Equal(t, app.Notice{Title: app.MsgTextNotSavedTitle, Message: app.MsgTextNotSaved}, m.notice.notice)
}

func TestAppModel_EditsDeliveredInTypingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	authn := mock.NewMockAuthenticator(ctrl)
	result := make(chan auth.Result, 1)
	result <- auth.Result{Outcome: auth.Authenticated}
	authn.EXPECT().AuthenticateAsync(gomock.Any()).Return((<-chan auth.Result)(result))

	noteStore := store.NewMemoryNoteStore()
	controller := service.NewNoteController(authn, noteStore, config.Note{Key: models.DefaultNoteKey}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = controller.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})

	unlocked, err := controller.Unlock(context.Background())
	require.NoError(t, err)

	m := newAppModel(context.Background(), controller, models.NewAppBuildInfo("", "", ""))
	m, _ = update(t, m, unlockedMsg{result: unlocked})
	m.editor.SetValue("")

	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, runes("b"))
	require.Equal(t, "ab", m.editor.Value())
	require.Equal(t, uint64(2), m.revision)

	// the command for the second keystroke finishes first
	assert.Nil(t, cmdEdit(m.edits, 2, "ab")())
	assert.Nil(t, cmdEdit(m.edits, 1, "a")())

	saved, err := controller.Suspend(context.Background())
	require.NoError(t, err)
	assert.True(t, saved)

	stored, err := noteStore.Get(context.Background(), models.DefaultNoteKey)
	require.NoError(t, err)
	assert.Equal(t, m.editor.Value(), stored)
}

func TestAppModel_SaveDropsEditsStillInFlight(t *testing.T) {
	m, controller := unlockedModel(t, "")
	gomock.InOrder(
		controller.EXPECT().Edit("final").Return(nil),
		controller.EXPECT().Save(gomock.Any()).Return(true, nil),
	)

	m.editor.SetValue("final")
	m, cmd := update(t, m, saveKey)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenLocked, m.currentScreen)

	// a keystroke edit older than the save arrives late and is not delivered
	assert.Nil(t, cmdEdit(m.edits, m.revision-1, "fina")())
}

func TestAppModel_EditFailureShowsStatus(t *testing.T) {
	m, controller := unlockedModel(t, "")
	controller.EXPECT().Edit("x").Return(service.ErrControllerStopped)

	m, _ = update(t, m, runes("x"))

	msg := cmdEdit(m.edits, m.revision, "x")()
	require.IsType(t, editFailedMsg{}, msg)
	assert.ErrorIs(t, msg.(editFailedMsg).err, service.ErrControllerStopped)

	m, _ = update(t, m, msg)
	assert.Equal(t, app.MsgEditNotApplied, m.status)
}

func TestAppModel_StateUnlockedKeepsEditor(t *testing.T) {
	m, _ := unlockedModel(t, "draft")

	m, _ = update(t, m, stateMsg{snapshot: service.Snapshot{State: models.Unlocked, Text: "draft"}})
	assert.Equal(t, screenEditor, m.currentScreen)
	assert.Equal(t, "draft", m.editor.Value())
}

func TestAppModel_PassphrasePrompt(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan passphraseReply, 1)

	m, _ = update(t, m, passphraseRequestMsg{reason: "Unlock the textpad", reply: reply})
	require.NotNil(t, m.prompt)
	assert.Contains(t, m.View(), "Unlock the textpad")

	for _, r := range "hunter2" {
		m, _ = update(t, m, runes(string(r)))
	}
	assert.NotContains(t, m.View(), "hunter2", "input is masked")

	m, _ = update(t, m, enterKey)
	assert.Nil(t, m.prompt)
	assert.Equal(t, passphraseReply{passphrase: "hunter2"}, <-reply)
}

func TestAppModel_PassphrasePromptCancelled(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan passphraseReply, 1)

	m, _ = update(t, m, passphraseRequestMsg{reason: "Unlock", reply: reply})
	m, _ = update(t, m, escKey)

	assert.Nil(t, m.prompt)
	assert.ErrorIs(t, (<-reply).err, auth.ErrPromptCancelled)
}

func TestAppModel_QuitAnswersOpenPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan passphraseReply, 1)

	m, _ = update(t, m, passphraseRequestMsg{reason: "Unlock", reply: reply})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitByUser)
	assert.ErrorIs(t, (<-reply).err, auth.ErrPromptCancelled)
}

func TestAppModel_BuildInfoWindow(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runes("v"))
	assert.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: N/A")

	m, _ = update(t, m, escKey)
	assert.False(t, m.showBuildInfo)
}

// drain runs cmd and any batched commands it returns.
func drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}
