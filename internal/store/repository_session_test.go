// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (session.Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSessionRepository(&DB{DB: db, logger: l}, l), mock
}

// ── GetItem ───────────────────────────────────────────────────────────────────

func TestSessionRepository_GetItem_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value FROM session_entries").
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

	value, err := repo.GetItem(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetItem_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value FROM session_entries").
		WithArgs("token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetItem(context.Background(), "token")
	assert.ErrorIs(t, err, session.ErrItemNotFound)
}

func TestSessionRepository_GetItem_EmptyResult(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value FROM session_entries").
		WithArgs("user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetItem(context.Background(), "user")
	assert.ErrorIs(t, err, session.ErrItemNotFound)
}

func TestSessionRepository_GetItem_DBError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	boom := errors.New("database is locked")

	mock.ExpectQuery("SELECT value FROM session_entries").
		WithArgs("token").
		WillReturnError(boom)

	_, err := repo.GetItem(context.Background(), "token")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, boom)
}

func TestSessionRepository_SetItem_DBErrorReachesRepositoryLogger(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	repo := NewSessionRepository(&DB{DB: db, logger: l}, l)

	mock.ExpectExec("INSERT INTO session_entries").
		WillReturnError(errors.New("disk I/O error"))

	// a bare context carries no logger
	err = repo.SetItem(context.Background(), "token", "abc")
	require.ErrorIs(t, err, ErrExecutingStatement)

	assert.Contains(t, buf.String(), "failed to execute upsert for session entry")
	assert.Contains(t, buf.String(), "disk I/O error")
}

// ── SetItem ───────────────────────────────────────────────────────────────────

func TestSessionRepository_SetItem_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO session_entries").
		WithArgs("token", "abc").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SetItem(context.Background(), "token", "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_SetItem_DBError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO session_entries").
		WithArgs("token", "abc").
		WillReturnError(errors.New("readonly database"))

	err := repo.SetItem(context.Background(), "token", "abc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── RemoveItem ────────────────────────────────────────────────────────────────

func TestSessionRepository_RemoveItem_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM session_entries").
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RemoveItem(context.Background(), "token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_RemoveItem_Absent(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM session_entries").
		WithArgs("user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.RemoveItem(context.Background(), "user"))
}

func TestSessionRepository_RemoveItem_DBError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM session_entries").
		WithArgs("token").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.RemoveItem(context.Background(), "token")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
