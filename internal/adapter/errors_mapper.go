// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a completed exchange. It returns nil for 2xx.
func mapHTTPError(op operation, resp *resty.Response) *APIError {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		Op:         op.name,
		StatusCode: status,
		Message:    op.failure,
	}

	switch {
	case status == http.StatusBadRequest:
		apiErr.Err = ErrBadRequest
	case status == http.StatusUnauthorized:
		apiErr.Err = ErrUnauthorized
		if op.bearer {
			apiErr.Message = sessionExpiredMessage
		}
	case status == http.StatusForbidden:
		apiErr.Err = ErrForbidden
	case status == http.StatusNotFound:
		apiErr.Err = ErrNotFound
	case status == http.StatusConflict:
		apiErr.Err = ErrConflict
	case status >= http.StatusInternalServerError:
		// 5xx bodies are internals, never shown
		apiErr.Err = ErrServerError
		return apiErr
	default:
		apiErr.Err = fmt.Errorf("%w: http %d", ErrClientError, status)
	}

	if msg := serverMessage(resp); msg != "" {
		apiErr.Message = msg
	}

	return apiErr
}

func newTransportError(op operation, cause error) *APIError {
	return &APIError{
		Op:      op.name,
		Message: op.failure,
		Err:     errors.Join(ErrTransport, cause),
	}
}

func newDecodeError(op operation, status int, cause error) *APIError {
	return &APIError{
		Op:         op.name,
		StatusCode: status,
		Message:    op.failure,
		Err:        errors.Join(ErrDecodeResponse, cause),
	}
}

// serverMessage extracts the message the backend attached to an error
// response. It understands {"message": "..."}, a bare JSON string and plain
// text bodies. Anything else yields "".
func serverMessage(resp *resty.Response) string {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return ""
	}

	switch body[0] {
	case '{':
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		return strings.TrimSpace(payload.Message)
	case '"':
		var msg string
		if err := json.Unmarshal(body, &msg); err != nil {
			return ""
		}
		return strings.TrimSpace(msg)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if err == nil && mediaType == "text/plain" {
		return string(body)
	}

	return ""
}
