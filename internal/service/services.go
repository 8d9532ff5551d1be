// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/internal/config"
	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/store"
)

type ClientServices struct {
	NoteController NoteController
}

func NewClientServices(storages *store.ClientStorages, authenticator auth.Authenticator, cfg config.Note, log *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteController: NewNoteController(authenticator, storages.NoteStore, cfg, log),
	}
}
