// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// operation names an endpoint call and its generic failure message.
// bearer marks calls that carry the session token; only their 401s end the
// session.
type operation struct {
	name    string
	failure string
	bearer  bool
}

var (
	opLogin         = operation{name: "login", failure: "Login failed"}
	opRegister      = operation{name: "register", failure: "Registration failed"}
	opListPatients  = operation{name: "list patients", failure: "Failed to fetch patients", bearer: true}
	opGetPatient    = operation{name: "get patient", failure: "Failed to fetch patient", bearer: true}
	opCreatePatient = operation{name: "create patient", failure: "Failed to create patient", bearer: true}
	opUpdatePatient = operation{name: "update patient", failure: "Failed to update patient", bearer: true}
	opDeletePatient = operation{name: "delete patient", failure: "Failed to delete patient", bearer: true}
)

// Endpoint paths, relative to the configured base URL.
const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathPatients = "/patients"
	pathPatient  = "/patients/{id}"
)
