// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import "errors"

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrMissingClaims    = errors.New("no token claims in request context")
	ErrInvalidPatientID = errors.New("invalid patient id")
)

// Messages sent to clients in {"message": ...} bodies.
const (
	msgInvalidJSON        = "Invalid JSON was passed"
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Invalid email or password"
	msgUnauthorized       = "Invalid or expired token"
	msgPatientNotFound    = "Patient not found"
	msgInvalidPatientID   = "Invalid patient id"
	msgInvalidBirthDate   = "Invalid birth date, expected dd/MM/yyyy"
	msgInternal           = "Internal server error"
)
