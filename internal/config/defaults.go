// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-lockpad/models"

const defaultAuthReason = "Use Touch ID to unlock this textpad"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{Backend: BackendKeyring},
		Note: Note{
			Namespace:   models.DefaultNamespace,
			Key:         models.DefaultNoteKey,
			DefaultText: models.DefaultNoteText,
		},
		Auth: Auth{
			Method: AuthMethodAuto,
			Reason: defaultAuthReason,
		},
		Log: Log{Level: "info"},
	}
}
