// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSessionEntryQuery(t *testing.T) {
	query, args, err := upsertSessionEntryQuery("token", "abc")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO session_entries")
	assert.Contains(t, query, "CURRENT_TIMESTAMP")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	assert.NotContains(t, query, "$1", "sqlite uses ? placeholders")
	assert.Equal(t, []any{"token", "abc"}, args)
}

func TestSelectSessionEntryQuery(t *testing.T) {
	query, args, err := selectSessionEntryQuery("user")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM session_entries WHERE key = ?", query)
	assert.Equal(t, []any{"user"}, args)
}

func TestDeleteSessionEntryQuery(t *testing.T) {
	query, args, err := deleteSessionEntryQuery("token")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM session_entries WHERE key = ?", query)
	assert.Equal(t, []any{"token"}, args)
}
