// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/validators"
)

type ClientServices struct {
	AuthService    ClientAuthService
	PatientService ClientPatientService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sess SessionManager, appCfg config.ClientApp, log *logger.Logger) *ClientServices {
	validator := validators.NewPatientValidator()

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, sess, validator, appCfg, log),
		PatientService: NewClientPatientService(serverAdapter, validator, log),
	}
}
