// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/service"
	"github.com/MKhiriev/go-patient-keeper/internal/session"
	"github.com/MKhiriev/go-patient-keeper/internal/store"
)

var _ Client = (*App)(nil)

type App struct {
	Services *service.ClientServices

	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewApp opens the session database named in cfg and wires the session,
// the HTTP adapter and the services. The caller must Close the App.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess := session.New(storages.SessionRepository, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	log.Debug().Str("func", "NewApp").Msg("client app initialized")

	return &App{
		Services: service.NewClientServices(serverAdapter, sess, cfg.App, log),
		storages: storages,
		logger:   log,
	}, nil
}

func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}
