// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
)

// mapAdapterError translates an adapter failure into a service business
// error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return newError(ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrForbidden):
		return newError(ErrAccessDenied, err)
	case errors.Is(err, adapter.ErrNotFound):
		return newError(ErrPatientNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrClientError):
		return newError(ErrRejectedByServer, err)
	case errors.Is(err, adapter.ErrServerError),
		errors.Is(err, adapter.ErrTransport):
		return newError(ErrServerUnavailable, err)
	case errors.Is(err, adapter.ErrDecodeResponse):
		return newError(ErrUnexpectedResponse, err)
	}

	return err
}

// mapAuthError is mapAdapterError for login and registration, where a 401 or
// 400 means bad credentials and a 409 means the email is taken.
func mapAuthError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrBadRequest):
		return newError(ErrInvalidCredentials, err)
	case errors.Is(err, adapter.ErrConflict):
		return newError(ErrAlreadyRegistered, err)
	}

	return mapAdapterError(err)
}
