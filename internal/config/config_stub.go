// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StubConfig configures the in-memory backend stub.
type StubConfig struct {
	HTTPAddress   string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// BasePath is the prefix the routes are mounted under. It is shared with
	// the client (ADAPTER_BASE_PATH / --base-path) so both sides agree.
	BasePath string
}

// GetStubConfig builds and validates the stub server config view.
func GetStubConfig(flagCfg *StructuredConfig) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		HTTPAddress:   cfg.Stub.HTTPAddress,
		BasePath:      cfg.Adapter.BasePath,
		TokenSignKey:  cfg.Stub.TokenSignKey,
		TokenIssuer:   cfg.Stub.TokenIssuer,
		TokenDuration: cfg.Stub.TokenDuration,
	}

	if err = stubCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating stub config: %w", err)
	}

	return stubCfg, nil
}
