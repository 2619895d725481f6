// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stubserver implements an in-memory clinic backend speaking the same
// REST contract as the production API: company registration, login with
// bcrypt-hashed passwords, HS256 bearer tokens and per-company patient CRUD.
//
// Birth dates are accepted and returned as dd/MM/yyyy, errors are JSON
// bodies of the form {"message": "..."}, and every response carries an
// X-Trace-ID header. State lives for the lifetime of the process.
//
// The stub backs the client's end-to-end tests and local development via
// `patientctl stub-server`. It is not meant to hold real data.
package stubserver
