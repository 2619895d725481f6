// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side behaviour switches.
type ClientApp struct {
	// CheckTokenExpiry makes session restore drop an expired stored token.
	CheckTokenExpiry bool
}

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the backend address.
	HTTPAddress string
	// BasePath is the path prefix of every endpoint.
	BasePath string
	// RequestTimeout bounds a single request. Zero means no client timeout.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file the session is persisted to.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLog holds client log output settings.
type ClientLog struct {
	// File is the log file path. Empty selects the default location.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. flagCfg is the command-line layer and may
// be nil.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			CheckTokenExpiry: cfg.App.CheckTokenExpiry.Enabled(),
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			BasePath:       cfg.Adapter.BasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}
