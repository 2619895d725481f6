// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business logic: authentication,
// session restore and patient management on top of the server adapter.
//
// Every error returned by the services is either a validation error wrapped
// in [ErrInvalidInput] or an [*Error] whose Kind is one of the sentinel
// errors of this package. The adapter error, with the server's message,
// stays reachable through errors.As.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager is the part of the session the services need. It is
// satisfied by *session.Session.
type SessionManager interface {
	// Current returns the stored token and user.
	Current(ctx context.Context) (models.Session, error)

	// Clear removes the stored session.
	Clear(ctx context.Context) error

	// ExpiresAt decodes the expiry of the stored token. ok is false when
	// there is no token or it carries no expiry.
	ExpiresAt(ctx context.Context) (expiresAt time.Time, ok bool, err error)
}

// ClientAuthService defines the client-side contract for authentication and
// session lifecycle.
type ClientAuthService interface {
	// Login validates the credentials, authenticates against the backend and
	// returns the session the adapter stored.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Register validates the request, creates the company and its first
	// user, and returns the resulting session.
	Register(ctx context.Context, details models.RegisterRequest) (models.Session, error)

	// Logout clears the stored session. Logging out without a session is
	// not an error.
	Logout(ctx context.Context) error

	// CurrentSession returns the stored session, or ErrNotAuthenticated.
	CurrentSession(ctx context.Context) (models.Session, error)

	// RestoreSession loads the stored session at start-up. When token expiry
	// checking is enabled an expired or undecodable token is discarded and
	// ErrSessionExpired is returned. An absent session yields a zero
	// Session and no error.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientPatientService defines patient management for the authenticated
// user's company.
type ClientPatientService interface {
	List(ctx context.Context) ([]models.Patient, error)
	Get(ctx context.Context, id int64) (models.Patient, error)

	// Create validates p before submitting it. A rejected patient never
	// reaches the network.
	Create(ctx context.Context, p models.Patient) (models.Patient, error)

	// Update validates p and replaces the patient with the given id.
	Update(ctx context.Context, id int64, p models.Patient) (models.Patient, error)

	Delete(ctx context.Context, id int64) error
}
