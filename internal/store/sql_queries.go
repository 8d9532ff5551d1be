// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	notesTable     = "notes"
	vaultKeysTable = "vault_keys"

	upsertNoteSuffix     = "ON CONFLICT (namespace, note_key) DO UPDATE SET sealed = excluded.sealed, updated_at = excluded.updated_at"
	insertVaultKeySuffix = "ON CONFLICT (namespace) DO NOTHING"
)

func buildGetNoteQuery(b sq.StatementBuilderType, namespace, key string) (string, []any, error) {
	return b.Select("sealed").
		From(notesTable).
		Where(sq.Eq{"namespace": namespace, "note_key": key}).
		ToSql()
}

func buildUpsertNoteQuery(b sq.StatementBuilderType, namespace, key, sealed string, now time.Time) (string, []any, error) {
	return b.Insert(notesTable).
		Columns("namespace", "note_key", "sealed", "updated_at").
		Values(namespace, key, sealed, now).
		Suffix(upsertNoteSuffix).
		ToSql()
}

func buildGetVaultKeyQuery(b sq.StatementBuilderType, namespace string) (string, []any, error) {
	return b.Select("salt", "wrapped_dek").
		From(vaultKeysTable).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}

func buildInsertVaultKeyQuery(b sq.StatementBuilderType, namespace, salt, wrappedDEK string, now time.Time) (string, []any, error) {
	return b.Insert(vaultKeysTable).
		Columns("namespace", "salt", "wrapped_dek", "created_at").
		Values(namespace, salt, wrappedDEK, now).
		Suffix(insertVaultKeySuffix).
		ToSql()
}
