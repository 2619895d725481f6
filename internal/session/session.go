// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/MKhiriev/go-patient-keeper/models"
)

// Session is the authenticated state shared by the adapter and the services.
// Reads go straight to storage; writes are serialized so that the token and
// the user are always replaced together.
type Session struct {
	storage Storage
	logger  *logger.Logger

	mu sync.Mutex
}

// New returns a Session backed by storage.
func New(storage Storage, log *logger.Logger) *Session {
	return &Session{
		storage: storage,
		logger:  log,
	}
}

// Token returns the stored bearer token, or an empty string when there is
// none.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, err := s.storage.GetItem(ctx, KeyToken)
	if errors.Is(err, ErrItemNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading session token: %w", err)
	}
	return token, nil
}

// User returns the stored user summary. ok is false when no user is stored.
// An entry that no longer decodes is treated as absent.
func (s *Session) User(ctx context.Context) (user models.UserSummary, ok bool, err error) {
	raw, err := s.storage.GetItem(ctx, KeyUser)
	if errors.Is(err, ErrItemNotFound) {
		return models.UserSummary{}, false, nil
	}
	if err != nil {
		return models.UserSummary{}, false, fmt.Errorf("error reading session user: %w", err)
	}

	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn().Err(err).Str("func", "Session.User").Msg("stored user is not valid JSON, ignoring")
		return models.UserSummary{}, false, nil
	}

	return user, true, nil
}

// Current returns the token and user together.
func (s *Session) Current(ctx context.Context) (models.Session, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return models.Session{}, err
	}

	user, _, err := s.User(ctx)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{Token: token, User: user}, nil
}

// Start stores a freshly issued session, replacing any previous one.
func (s *Session) Start(ctx context.Context, current models.Session) error {
	userJSON, err := json.Marshal(current.User)
	if err != nil {
		return fmt.Errorf("error encoding session user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.storage.SetItem(ctx, KeyToken, current.Token); err != nil {
		return fmt.Errorf("error storing session token: %w", err)
	}
	if err = s.storage.SetItem(ctx, KeyUser, string(userJSON)); err != nil {
		return fmt.Errorf("error storing session user: %w", err)
	}

	s.logger.Debug().Str("func", "Session.Start").Str("email", current.User.Email).Msg("session started")
	return nil
}

// Clear removes the token and the user. Both removals are attempted even if
// the first one fails.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokenErr := s.storage.RemoveItem(ctx, KeyToken)
	userErr := s.storage.RemoveItem(ctx, KeyUser)
	if err := errors.Join(tokenErr, userErr); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	s.logger.Debug().Str("func", "Session.Clear").Msg("session cleared")
	return nil
}

// IsAuthenticated reports whether a token is stored. A storage failure
// counts as not authenticated.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// ExpiresAt decodes the exp claim of the stored token without verifying it.
// ok is false when there is no token or the token carries no exp claim. A
// token that is not a JWT yields an error.
func (s *Session) ExpiresAt(ctx context.Context) (expiresAt time.Time, ok bool, err error) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return time.Time{}, false, err
	}

	return utils.ParseUnverifiedExpiry(token)
}
