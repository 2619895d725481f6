// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the session-aware client of the clinic REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. [NewHTTPServerAdapter] returns the resty-based
// implementation. It reads the bearer token from the session at call time,
// stores the token returned by login and registration, and clears the session
// whenever the backend answers 401.
//
// Every failure is returned as an [*APIError] whose message is either the
// server-provided message or a generic per-operation one. The sentinel errors
// in errors.go are reachable through [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrTransport] when no response was received).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-patient-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the clinic backend. All
// operations block until the exchange completes or ctx is done. Nothing is
// retried or cached.
type ServerAdapter interface {
	// Login authenticates with email and password. On success the returned
	// token is stored in the session before Login returns.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates a company and its first user. On success the returned
	// token is stored in the session before Register returns.
	Register(ctx context.Context, details models.RegisterRequest) (models.AuthResponse, error)

	// ListPatients returns every patient visible to the session's company.
	ListPatients(ctx context.Context) ([]models.Patient, error)

	// GetPatient returns the patient with the given id.
	GetPatient(ctx context.Context, id int64) (models.Patient, error)

	// CreatePatient submits a new patient and returns the stored record,
	// including the id assigned by the backend. Any id on p is ignored.
	CreatePatient(ctx context.Context, p models.Patient) (models.Patient, error)

	// UpdatePatient replaces the patient with the given id and returns the
	// stored record.
	UpdatePatient(ctx context.Context, id int64, p models.Patient) (models.Patient, error)

	// DeletePatient removes the patient with the given id.
	DeletePatient(ctx context.Context, id int64) error
}

// SessionStore is the part of the session the adapter needs. It is
// satisfied by *session.Session.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Start(ctx context.Context, current models.Session) error
	Clear(ctx context.Context) error
}
