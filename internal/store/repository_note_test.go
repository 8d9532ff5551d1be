package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/base64"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lockpad/internal/crypto"
	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/migrations"
)

const (
	testNamespace = "go-lockpad"
	testKey       = "lockedText"
	testSecret    = "correct horse battery staple"
)

var (
	selectVaultKey = regexp.QuoteMeta("SELECT salt, wrapped_dek FROM vault_keys WHERE namespace = ?")
	insertVaultKey = regexp.QuoteMeta("INSERT INTO vault_keys (namespace,salt,wrapped_dek,created_at) VALUES (?,?,?,?) ON CONFLICT (namespace) DO NOTHING")
	selectNote     = regexp.QuoteMeta("SELECT sealed FROM notes WHERE namespace = ? AND note_key = ?")
	upsertNote     = regexp.QuoteMeta("INSERT INTO notes (namespace,note_key,sealed,updated_at) VALUES (?,?,?,?) ON CONFLICT (namespace, note_key)")
)

// captureArg records the value bound to a placeholder.
type captureArg struct {
	value *string
}

func (c captureArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*c.value = s
	}
	return ok
}

type vaultFixture struct {
	salt    string
	wrapped string
	dek     []byte
}

func newVaultFixture(t *testing.T, kc crypto.KeyChainService, secret string) vaultFixture {
	t.Helper()
	salt, err := kc.GenerateEncryptionSalt()
	require.NoError(t, err)
	dek, err := kc.GenerateDEK()
	require.NoError(t, err)
	wrapped, err := kc.WrapDEK(dek, kc.GenerateKEK(secret, salt))
	require.NoError(t, err)
	return vaultFixture{
		salt:    base64.StdEncoding.EncodeToString(salt),
		wrapped: base64.StdEncoding.EncodeToString(wrapped),
		dek:     dek,
	}
}

func newTestNoteStore(t *testing.T, secret string) (*sqlNoteStore, sqlmock.Sqlmock, crypto.KeyChainService) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	kc := crypto.NewKeyChainService()
	db := newDB(conn, migrations.DialectSQLite, sq.Question, NewSQLiteErrorClassifier(), logger.Nop())
	s := NewSQLNoteStore(db, testNamespace, secret, kc, logger.Nop()).(*sqlNoteStore)
	return s, mock, kc
}

func TestSQLNoteStore_GetNotFound(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)
	vault := newVaultFixture(t, kc, testSecret)

	mock.ExpectQuery(selectVaultKey).
		WithArgs(testNamespace).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))
	mock.ExpectQuery(selectNote).
		WithArgs(testNamespace, testKey).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLNoteStore_GetOpensSealedNote(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)
	vault := newVaultFixture(t, kc, testSecret)

	sealed, err := kc.Seal("secret text", vault.dek, []byte(testNamespace+"/"+testKey))
	require.NoError(t, err)

	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))
	mock.ExpectQuery(selectNote).
		WithArgs(testNamespace, testKey).
		WillReturnRows(sqlmock.NewRows([]string{"sealed"}).AddRow(sealed))
	// the data key is cached after the first read
	mock.ExpectQuery(selectNote).
		WithArgs(testNamespace, testKey).
		WillReturnRows(sqlmock.NewRows([]string{"sealed"}).AddRow(sealed))

	for range 2 {
		text, err := s.Get(context.Background(), testKey)
		require.NoError(t, err)
		assert.Equal(t, "secret text", text)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLNoteStore_SetSealsAndUpserts(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)
	vault := newVaultFixture(t, kc, testSecret)

	var stored string
	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))
	mock.ExpectExec(upsertNote).
		WithArgs(testNamespace, testKey, captureArg{value: &stored}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), testKey, "hello"))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NotContains(t, stored, "hello")
	opened, err := kc.Open(stored, vault.dek, []byte(testNamespace+"/"+testKey))
	require.NoError(t, err)
	assert.Equal(t, "hello", opened)

	_, err = kc.Open(stored, vault.dek, []byte(testNamespace+"/otherKey"))
	assert.Error(t, err, "a sealed note must not open under another key")
}

func TestSQLNoteStore_CreatesVaultKeyOnFirstUse(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)

	var salt, wrapped string
	mock.ExpectQuery(selectVaultKey).
		WithArgs(testNamespace).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(insertVaultKey).
		WithArgs(testNamespace, captureArg{value: &salt}, captureArg{value: &wrapped}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(upsertNote).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), testKey, "first"))
	assert.NoError(t, mock.ExpectationsWereMet())

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	rawWrapped, err := base64.StdEncoding.DecodeString(wrapped)
	require.NoError(t, err)
	dek, err := kc.UnwrapDEK(rawWrapped, kc.GenerateKEK(testSecret, rawSalt))
	require.NoError(t, err)
	assert.Equal(t, s.dek, dek)
}

func TestSQLNoteStore_ConcurrentVaultKeyCreationKeepsStoredKey(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)
	vault := newVaultFixture(t, kc, testSecret)

	mock.ExpectQuery(selectVaultKey).WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(insertVaultKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))
	mock.ExpectQuery(selectNote).WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Equal(t, vault.dek, s.dek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLNoteStore_WrongSecret(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, "not the secret")
	vault := newVaultFixture(t, kc, testSecret)

	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))

	_, err := s.Get(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrWrongSecret)

	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))

	err = s.Set(context.Background(), testKey, "x")
	assert.ErrorIs(t, err, ErrNoteNotSaved)
	assert.ErrorIs(t, err, ErrWrongSecret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLNoteStore_CorruptedVaultKey(t *testing.T) {
	s, mock, _ := newTestNoteStore(t, testSecret)

	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow("%%%", "%%%"))

	_, err := s.Get(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrCorruptedVaultKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLNoteStore_SetExecError(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)
	vault := newVaultFixture(t, kc, testSecret)

	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))
	mock.ExpectExec(upsertNote).WillReturnError(errors.New("disk I/O error"))

	err := s.Set(context.Background(), testKey, "hello")
	assert.ErrorIs(t, err, ErrNoteNotSaved)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLNoteStore_GetQueryError(t *testing.T) {
	s, mock, kc := newTestNoteStore(t, testSecret)
	vault := newVaultFixture(t, kc, testSecret)

	mock.ExpectQuery(selectVaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "wrapped_dek"}).AddRow(vault.salt, vault.wrapped))
	mock.ExpectQuery(selectNote).WillReturnError(errors.New("boom"))

	_, err := s.Get(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
