// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/validators"
	"github.com/MKhiriev/go-patient-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   SessionManager
	validator validators.Validator
	cfg       config.ClientApp
	logger    *logger.Logger

	now func() time.Time
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sess SessionManager, validator validators.Validator, cfg config.ClientApp, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		session:   sess,
		validator: validator,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login failed")
		return models.Session{}, mapAuthError(err)
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Str("email", resp.User.Email).Msg("logged in")
	return resp.Session(), nil
}

func (a *clientAuthService) Register(ctx context.Context, details models.RegisterRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, details); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	resp, err := a.adapter.Register(ctx, details)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Msg("registration failed")
		return models.Session{}, mapAuthError(err)
	}

	a.logger.Info().Str("func", "clientAuthService.Register").
		Str("email", resp.User.Email).
		Str("company", details.CompanyName).
		Msg("registered")
	return resp.Session(), nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("error logging out: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("logged out")
	return nil
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (models.Session, error) {
	current, err := a.session.Current(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}
	if !current.IsAuthenticated() {
		return models.Session{}, ErrNotAuthenticated
	}

	return current, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	current, err := a.session.Current(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}
	if !current.IsAuthenticated() || !a.cfg.CheckTokenExpiry {
		return current, nil
	}

	expiresAt, ok, err := a.session.ExpiresAt(ctx)
	switch {
	case err != nil:
		a.logger.Warn().Err(err).Str("func", "clientAuthService.RestoreSession").Msg("stored token is not decodable, discarding")
	case !ok:
		return current, nil
	case a.now().Before(expiresAt):
		return current, nil
	default:
		a.logger.Info().Str("func", "clientAuthService.RestoreSession").Time("expired_at", expiresAt).Msg("stored token expired, discarding")
	}

	if err = a.session.Clear(ctx); err != nil {
		return models.Session{}, fmt.Errorf("error discarding expired session: %w", err)
	}
	return models.Session{}, ErrSessionExpired
}
