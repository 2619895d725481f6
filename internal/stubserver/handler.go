// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/validators"
)

type Handler struct {
	store     *memoryStore
	validator validators.Validator
	cfg       config.StubConfig

	logger *logger.Logger
}

func NewHandler(cfg config.StubConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("stub http handler created")
	return &Handler{
		store:     newMemoryStore(),
		validator: validators.NewPatientValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}
