// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying a failed exchange. Every [*APIError] wraps
// exactly one of them.
var (
	// ErrTransport means no HTTP response was received (connection refused,
	// timeout, cancelled context, ...).
	ErrTransport = errors.New("transport failure")
	// ErrDecodeResponse means a 2xx response body could not be decoded.
	ErrDecodeResponse = errors.New("malformed response")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	// ErrClientError covers any other non-2xx status below 500.
	ErrClientError = errors.New("request rejected")
	// ErrServerError covers every 5xx status.
	ErrServerError = errors.New("server error")
)

// sessionExpiredMessage is reported for a 401 without a server message.
const sessionExpiredMessage = "session expired"

// APIError is returned by every failed [ServerAdapter] operation.
//
// Message is what a user should see: the server-provided message when the
// backend sent one, otherwise a generic per-operation message such as
// "Failed to fetch patients".
type APIError struct {
	// Op names the failed operation, e.g. "list patients".
	Op string
	// StatusCode is the HTTP status, or zero when no response was received.
	StatusCode int
	// Message is the user-facing message.
	Message string
	// Err is the sentinel classification, possibly joined with the
	// underlying cause.
	Err error
}

// Error returns the user-facing message.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the classification and cause to [errors.Is] and [errors.As].
func (e *APIError) Unwrap() error {
	return e.Err
}

// Detail renders the error with its operation and status for logs.
func (e *APIError) Detail() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: http %d: %s: %v", e.Op, e.StatusCode, e.Message, e.Err)
}
