// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations registered: goose's first statement fails
	_, err = Migrate(context.Background(), db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := Migrate(context.Background(), db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	applied, err := Migrate(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 applied migration, got %d", applied)
	}
	// a second run finds nothing to apply
	applied, err = Migrate(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected error on repeated migration: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected nothing to apply, got %d", applied)
	}

	if _, err = db.Exec(`INSERT INTO session_entries (key, value) VALUES ('token', 'abc')`); err != nil {
		t.Fatalf("session_entries table not usable: %v", err)
	}

	var value string
	if err = db.QueryRow(`SELECT value FROM session_entries WHERE key = 'token'`).Scan(&value); err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if value != "abc" {
		t.Errorf("expected 'abc', got %q", value)
	}
}
