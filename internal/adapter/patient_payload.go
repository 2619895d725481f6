// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/MKhiriev/go-patient-keeper/models"
)

// patientPayload is a patient as the backend serialises it. Some backend
// revisions send a single combined name instead of first and last name.
type patientPayload struct {
	models.Patient
	Name string `json:"name,omitempty"`
}

// toPatient converts a decoded payload to the client form: canonical birth
// date and split name.
func (p patientPayload) toPatient() models.Patient {
	patient := p.Patient
	if patient.FirstName == "" && patient.LastName == "" {
		patient.SetFullName(p.Name)
	}
	patient.BirthDate = utils.ToCanonicalDate(patient.BirthDate)
	return patient
}

// toWirePatient returns the request body for p with the birth date in the
// backend's dd/MM/yyyy form.
func toWirePatient(p models.Patient) models.Patient {
	p.BirthDate = utils.ToWireDate(p.BirthDate)
	return p
}
