// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authenticated state of the API client.
//
// A [Session] wraps a durable key/value [Storage] and keeps two entries in
// it: the bearer token under [KeyToken] and the JSON-encoded user summary
// under [KeyUser]. The adapter reads the token at call time, writes it after
// login or registration and removes it when the backend answers 401.
package session
