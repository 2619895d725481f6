// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Patient is the primary record managed by the clinic backend.
//
// Inside the client BirthDate is always kept in the canonical yyyy-MM-dd
// form; conversion to and from the backend wire format happens in the
// transport layer. ID is zero until the backend has persisted the record.
type Patient struct {
	// ID is assigned by the backend on creation. Omitted from request
	// bodies while zero.
	ID int64 `json:"id,omitempty"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// BirthDate is a date-only value, yyyy-MM-dd.
	BirthDate string `json:"birthDate"`
	// Gender is an open value ("female", "male", "other", ...).
	Gender string `json:"gender"`

	AddressStreet       string `json:"addressStreet"`
	AddressNumber       string `json:"addressNumber"`
	AddressComplement   string `json:"addressComplement,omitempty"`
	AddressNeighborhood string `json:"addressNeighborhood"`
	AddressCity         string `json:"addressCity"`
	AddressState        string `json:"addressState"`
	AddressZipCode      string `json:"addressZipCode"`

	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`

	HealthInsurance       string `json:"healthInsurance,omitempty"`
	HealthInsuranceNumber string `json:"healthInsuranceNumber,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	MedicalObservations   string `json:"medicalObservations,omitempty"`

	// CreatedAt and UpdatedAt are server-assigned and opaque to the client.
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// FullName joins the first and last name with a single space.
func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SetFullName splits a combined name the way the backend does: the first
// word becomes FirstName and the last word becomes LastName. Middle words
// are dropped. An empty name leaves the patient untouched.
func (p *Patient) SetFullName(name string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return
	}

	p.FirstName = parts[0]
	if len(parts) > 1 {
		p.LastName = parts[len(parts)-1]
	}
}

// WithoutServerFields returns a copy of p with the server-assigned id and
// timestamps cleared. Useful for comparing a submitted record with the one
// the backend returned.
func (p Patient) WithoutServerFields() Patient {
	p.ID = 0
	p.CreatedAt = ""
	p.UpdatedAt = ""
	return p
}
