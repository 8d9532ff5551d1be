// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/internal/config"
	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/store"
	"github.com/MKhiriev/go-lockpad/internal/utils"
	"github.com/MKhiriev/go-lockpad/internal/validators"
	"github.com/MKhiriev/go-lockpad/models"
)

const eventQueueSize = 16

// noteController serializes every state change through one goroutine (Run).
// Fields below the loop-owned marker are never touched by any other goroutine.
type noteController struct {
	authenticator auth.Authenticator
	store         store.NoteStore
	key           string
	defaultText   string
	validator     validators.Validator
	sessions      *utils.UUIDGenerator
	now           func() time.Time

	events   chan event
	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger

	// loop-owned
	state        models.LockState
	buffer       string
	waiter       chan unlockReply
	sessionID    string
	lastActivity time.Time
	lastSaveErr  error
}

// NewNoteController returns a [NoteController] that is idle until Run is called.
func NewNoteController(authenticator auth.Authenticator, noteStore store.NoteStore, cfg config.Note, log *logger.Logger) NoteController {
	defaultText := cfg.DefaultText
	if defaultText == "" {
		defaultText = models.DefaultNoteText
	}
	key := cfg.Key
	if key == "" {
		key = models.DefaultNoteKey
	}

	return &noteController{
		authenticator: authenticator,
		store:         noteStore,
		key:           key,
		defaultText:   defaultText,
		validator:     validators.NewNoteValidator(),
		sessions:      utils.NewUUIDGenerator(),
		now:           time.Now,
		events:        make(chan event, eventQueueSize),
		done:          make(chan struct{}),
		logger:        log,
		state:         models.Locked,
	}
}

type event interface{ isEvent() }

type unlockEvent struct {
	ctx   context.Context
	reply chan unlockReply
}

type authDoneEvent struct {
	ctx    context.Context
	result auth.Result
}

type editEvent struct {
	text string
}

type saveEvent struct {
	ctx    context.Context
	reason string
	reply  chan saveReply
}

type snapshotEvent struct {
	reply chan Snapshot
}

func (unlockEvent) isEvent()   {}
func (authDoneEvent) isEvent() {}
func (editEvent) isEvent()     {}
func (saveEvent) isEvent()     {}
func (snapshotEvent) isEvent() {}

type unlockReply struct {
	result UnlockResult
	err    error
}

type saveReply struct {
	saved bool
	err   error
}

func (c *noteController) Run(ctx context.Context) error {
	defer c.stopOnce.Do(func() { close(c.done) })

	c.logger.Debug().Str("func", "noteController.Run").Msg("note controller started")

	for {
		select {
		case <-ctx.Done():
			c.flush(ctx)
			c.logger.Debug().Str("func", "noteController.Run").Msg("note controller stopped")
			return nil
		case e := <-c.events:
			c.handle(e)
		}
	}
}

func (c *noteController) handle(e event) {
	switch e := e.(type) {
	case unlockEvent:
		c.handleUnlock(e)
	case authDoneEvent:
		c.handleAuthDone(e)
	case editEvent:
		if c.state == models.Unlocked {
			c.buffer = e.text
			c.lastActivity = c.now()
		}
	case saveEvent:
		saved, err := c.save(e.ctx, e.reason)
		e.reply <- saveReply{saved: saved, err: err}
	case snapshotEvent:
		e.reply <- Snapshot{
			State:          c.state,
			Text:           c.buffer,
			Authenticating: c.waiter != nil,
			LastActivity:   c.lastActivity,
			LastSaveErr:    c.lastSaveErr,
		}
	}
}

func (c *noteController) handleUnlock(e unlockEvent) {
	if c.waiter != nil {
		e.reply <- unlockReply{err: ErrAuthenticationInProgress}
		return
	}
	if c.state == models.Unlocked {
		e.reply <- unlockReply{result: UnlockResult{
			Outcome: auth.Authenticated,
			Note:    models.Note{Key: c.key, Text: c.buffer},
		}}
		return
	}

	c.waiter = e.reply
	c.sessionID = c.sessions.Generate()

	authCtx := utils.WithSessionID(context.WithoutCancel(e.ctx), c.sessionID)
	authCtx = c.logger.With().Str("session_id", c.sessionID).Logger().WithContext(authCtx)

	c.logger.Info().
		Str("func", "noteController.handleUnlock").
		Str("session_id", c.sessionID).
		Msg("authentication started")

	go func() {
		result := <-c.authenticator.AuthenticateAsync(authCtx)
		select {
		case c.events <- authDoneEvent{ctx: authCtx, result: result}:
		case <-c.done:
		}
	}()
}

func (c *noteController) handleAuthDone(e authDoneEvent) {
	reply := c.waiter
	c.waiter = nil

	log := c.logger.With().
		Str("func", "noteController.handleAuthDone").
		Str("session_id", c.sessionID).
		Stringer("outcome", e.result.Outcome).
		Logger()

	if !e.result.OK() {
		log.Info().Err(e.result.Err).Msg("note stays locked")
		reply <- unlockReply{result: UnlockResult{Outcome: e.result.Outcome}, err: e.result.Err}
		return
	}

	text, err := c.store.Get(e.ctx, c.key)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		text = c.defaultText
	case err != nil:
		log.Err(err).Msg("failed to load note")
		reply <- unlockReply{
			result: UnlockResult{Outcome: e.result.Outcome},
			err:    fmt.Errorf("failed to load note: %w", err),
		}
		return
	}

	c.state = models.Unlocked
	c.buffer = text
	c.lastActivity = c.now()

	log.Info().Msg("note unlocked")
	reply <- unlockReply{result: UnlockResult{
		Outcome: auth.Authenticated,
		Note:    models.Note{Key: c.key, Text: text},
	}}
}

// save commits the buffer and locks. The transition happens even when the
// store write fails.
func (c *noteController) save(ctx context.Context, reason string) (bool, error) {
	if c.state == models.Locked {
		return false, nil
	}

	text := c.buffer
	c.state = models.Locked
	c.buffer = ""

	err := c.validator.Validate(ctx, models.Note{Key: c.key, Text: text})
	if err == nil {
		err = c.store.Set(ctx, c.key, text)
	}
	if err != nil {
		c.logger.Err(err).
			Str("func", "noteController.save").
			Str("session_id", c.sessionID).
			Str("reason", reason).
			Msg("note locked but not saved")
		if !errors.Is(err, store.ErrNoteNotSaved) {
			err = fmt.Errorf("%w: %w", store.ErrNoteNotSaved, err)
		}
		c.lastSaveErr = err
		return false, err
	}
	c.lastSaveErr = nil

	c.logger.Info().
		Str("func", "noteController.save").
		Str("session_id", c.sessionID).
		Str("reason", reason).
		Msg("note saved and locked")
	return true, nil
}

// flush saves an unlocked note while the loop shuts down so that stopping the
// application never drops edits.
func (c *noteController) flush(ctx context.Context) {
	if c.state != models.Unlocked {
		return
	}
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	_, _ = c.save(flushCtx, "shutdown")
}

func (c *noteController) Unlock(ctx context.Context) (UnlockResult, error) {
	reply := make(chan unlockReply, 1)
	if err := c.post(ctx, unlockEvent{ctx: ctx, reply: reply}); err != nil {
		return UnlockResult{}, err
	}

	select {
	case r := <-reply:
		return r.result, r.err
	case <-ctx.Done():
		return UnlockResult{}, ctx.Err()
	case <-c.done:
		return UnlockResult{}, ErrControllerStopped
	}
}

func (c *noteController) Edit(text string) error {
	return c.post(context.Background(), editEvent{text: text})
}

func (c *noteController) Save(ctx context.Context) (bool, error) {
	return c.requestSave(ctx, "save")
}

func (c *noteController) Suspend(ctx context.Context) (bool, error) {
	return c.requestSave(ctx, "suspend")
}

func (c *noteController) requestSave(ctx context.Context, reason string) (bool, error) {
	reply := make(chan saveReply, 1)
	if err := c.post(ctx, saveEvent{ctx: ctx, reason: reason, reply: reply}); err != nil {
		return false, err
	}

	select {
	case r := <-reply:
		return r.saved, r.err
	case <-c.done:
		return false, ErrControllerStopped
	}
}

func (c *noteController) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if err := c.post(ctx, snapshotEvent{reply: reply}); err != nil {
		return Snapshot{}, err
	}

	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-c.done:
		return Snapshot{}, ErrControllerStopped
	}
}

func (c *noteController) post(ctx context.Context, e event) error {
	select {
	case <-c.done:
		return ErrControllerStopped
	default:
	}

	select {
	case c.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return ErrControllerStopped
	}
}
