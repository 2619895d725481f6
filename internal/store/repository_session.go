// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/session"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository returns a [session.Storage] persisted in the
// session_entries table.
func NewSessionRepository(db *DB, logger *logger.Logger) session.Storage {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) GetItem(ctx context.Context, key string) (string, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := selectSessionEntryQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.GetItem").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", session.ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetItem").
			Str("key", key).
			Msg("failed to read session entry")
		return "", fmt.Errorf("%w (key=%s): %w", ErrScanningRow, key, err)
	}

	return value, nil
}

func (r *sessionRepository) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := upsertSessionEntryQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SetItem").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetItem").
			Str("key", key).
			Msg("failed to execute upsert for session entry")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *sessionRepository) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := deleteSessionEntryQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.RemoveItem").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.RemoveItem").
			Str("key", key).
			Msg("failed to delete session entry")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}
