// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sessionEntriesTable = "session_entries"

// upsertSessionEntryQuery inserts key or replaces its value, stamping
// updated_at with the database clock.
func upsertSessionEntryQuery(key, value string) (string, []any, error) {
	return sq.Insert(sessionEntriesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func selectSessionEntryQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(sessionEntriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func deleteSessionEntryQuery(key string) (string, []any, error) {
	return sq.Delete(sessionEntriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
