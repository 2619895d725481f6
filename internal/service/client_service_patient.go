// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/validators"
	"github.com/MKhiriev/go-patient-keeper/models"
)

type clientPatientService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientPatientService(serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) ClientPatientService {
	return &clientPatientService{
		adapter:   serverAdapter,
		validator: validator,
		logger:    log,
	}
}

func (p *clientPatientService) List(ctx context.Context) ([]models.Patient, error) {
	patients, err := p.adapter.ListPatients(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	p.logger.Debug().Str("func", "clientPatientService.List").Int("count", len(patients)).Msg("patients fetched")
	return patients, nil
}

func (p *clientPatientService) Get(ctx context.Context, id int64) (models.Patient, error) {
	if id <= 0 {
		return models.Patient{}, ErrInvalidPatientID
	}

	patient, err := p.adapter.GetPatient(ctx, id)
	if err != nil {
		return models.Patient{}, mapAdapterError(err)
	}
	return patient, nil
}

func (p *clientPatientService) Create(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if err := p.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := p.adapter.CreatePatient(ctx, patient)
	if err != nil {
		return models.Patient{}, mapAdapterError(err)
	}

	p.logger.Info().Str("func", "clientPatientService.Create").Int64("patient_id", created.ID).Msg("patient created")
	return created, nil
}

func (p *clientPatientService) Update(ctx context.Context, id int64, patient models.Patient) (models.Patient, error) {
	if id <= 0 {
		return models.Patient{}, ErrInvalidPatientID
	}
	if err := p.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	updated, err := p.adapter.UpdatePatient(ctx, id, patient)
	if err != nil {
		return models.Patient{}, mapAdapterError(err)
	}

	p.logger.Info().Str("func", "clientPatientService.Update").Int64("patient_id", id).Msg("patient updated")
	return updated, nil
}

func (p *clientPatientService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPatientID
	}

	if err := p.adapter.DeletePatient(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	p.logger.Info().Str("func", "clientPatientService.Delete").Int64("patient_id", id).Msg("patient deleted")
	return nil
}
