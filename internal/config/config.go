// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-patient-keeper. It aggregates all sub-configurations and is populated by
// merging built-in defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour switches.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and transport settings used by the
	// API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the durable session storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log output settings.
	Log Log `envPrefix:"CLIENT_"`

	// Stub holds settings of the in-memory backend stub.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour switches.
type App struct {
	// CheckTokenExpiry makes session restore discard a stored token whose
	// exp claim is in the past. Requests never check expiry themselves.
	// Env: APP_CHECK_TOKEN_EXPIRY
	CheckTokenExpiry Toggle `env:"CHECK_TOKEN_EXPIRY"`
}

// Adapter holds settings for the outbound REST client.
type Adapter struct {
	// HTTPAddress is the backend address, with or without scheme
	// (e.g. "localhost:8080" or "https://clinic.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BasePath is prefixed to every endpoint path (e.g. "/api").
	// Env: ADAPTER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout bounds a single request. Zero keeps the transport
	// default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups durable storage settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path (e.g. "patientctl.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds log output settings.
type Log struct {
	// File is the path log lines are appended to. Empty means a
	// "patientctl.log" file next to the executable.
	// Env: CLIENT_LOG_FILE
	File string `env:"LOG_FILE"`
}

// Stub holds settings for the in-memory backend stub.
type Stub struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs the HS256 tokens the stub issues.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the iss claim of issued tokens.
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Later sources override non-zero fields of earlier ones; on/off settings
// are [Toggle]s so an explicit off is non-zero too:
//  1. Built-in defaults
//  2. JSON file (path resolved from env or flags)
//  3. Environment variables
//  4. Command-line flags (flagCfg, may be nil)
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
