// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPatientID   = errors.New("patient id must be positive")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyRegistered  = errors.New("email is already registered")

	ErrNotAuthenticated = errors.New("not logged in")
	ErrSessionExpired   = errors.New("session expired")
	ErrAccessDenied     = errors.New("access denied")

	ErrPatientNotFound    = errors.New("patient not found")
	ErrRejectedByServer   = errors.New("request rejected by server")
	ErrServerUnavailable  = errors.New("server unavailable")
	ErrUnexpectedResponse = errors.New("unexpected server response")
)

// Error pairs a business error with the error that caused it. Error returns
// the cause's message, which for adapter failures is the message the server
// sent, while errors.Is matches both Kind and anything wrapped by Err.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newError(kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}
