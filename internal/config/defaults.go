// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, matching the development backend on localhost.
const (
	DefaultHTTPAddress   = "http://localhost:8080"
	DefaultBasePath      = "/api"
	DefaultDSN           = "patientctl.db"
	DefaultStubAddress   = "localhost:8080"
	DefaultTokenIssuer   = "patient-keeper-stub"
	DefaultTokenDuration = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
			BasePath:    DefaultBasePath,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Stub: Stub{
			HTTPAddress:   DefaultStubAddress,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
	}
}
