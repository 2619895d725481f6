// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names of the validated models.
const (
	FieldFirstName           = "firstName"
	FieldLastName            = "lastName"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldBirthDate           = "birthDate"
	FieldGender              = "gender"
	FieldAddressStreet       = "addressStreet"
	FieldAddressNumber       = "addressNumber"
	FieldAddressNeighborhood = "addressNeighborhood"
	FieldAddressCity         = "addressCity"
	FieldAddressState        = "addressState"
	FieldAddressZipCode      = "addressZipCode"

	FieldPassword    = "password"
	FieldCompanyName = "companyName"
)

// canonicalDateLayout is the client-side birth date form.
const canonicalDateLayout = "2006-01-02"

// requiredPatientFields are checked, in order, when no field list is given.
var requiredPatientFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldBirthDate,
	FieldGender,
	FieldAddressStreet,
	FieldAddressNumber,
	FieldAddressNeighborhood,
	FieldAddressCity,
	FieldAddressState,
	FieldAddressZipCode,
}

// PatientValidator implements [Validator] for patients and the
// authentication payloads: models.Patient, models.Credentials and
// models.RegisterRequest, by value or by pointer.
type PatientValidator struct {
}

// NewPatientValidator returns a PatientValidator as a [Validator].
func NewPatientValidator() Validator {
	return &PatientValidator{}
}

// Validate dispatches on the dynamic type of obj and returns the first
// violated rule. Optional fields restrict the checks to the named subset;
// when omitted every required field of the type is checked.
//
// Returns ErrUnsupportedType if obj is not a supported model and
// ErrUnknownField for a field name the type does not have.
func (v *PatientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Patient:
		return v.validatePatient(ctx, value, fields...)
	case *models.Patient:
		return v.validatePatient(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PatientValidator) validatePatient(ctx context.Context, p models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = requiredPatientFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFirstName:
			err = required(p.FirstName, ErrEmptyFirstName)
		case FieldLastName:
			err = required(p.LastName, ErrEmptyLastName)
		case FieldEmail:
			err = validateEmail(p.Email)
		case FieldPhone:
			err = required(p.Phone, ErrEmptyPhone)
		case FieldBirthDate:
			err = validateBirthDate(p.BirthDate)
		case FieldGender:
			err = required(p.Gender, ErrEmptyGender)
		case FieldAddressStreet:
			err = required(p.AddressStreet, ErrEmptyAddressStreet)
		case FieldAddressNumber:
			err = required(p.AddressNumber, ErrEmptyAddressNumber)
		case FieldAddressNeighborhood:
			err = required(p.AddressNeighborhood, ErrEmptyAddressNeighborhood)
		case FieldAddressCity:
			err = required(p.AddressCity, ErrEmptyAddressCity)
		case FieldAddressState:
			err = required(p.AddressState, ErrEmptyAddressState)
		case FieldAddressZipCode:
			err = required(p.AddressZipCode, ErrEmptyAddressZipCode)
		default:
			err = ErrUnknownField
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PatientValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(creds.Email); err != nil {
				return err
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PatientValidator) validateRegisterRequest(ctx context.Context, r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyName, FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldCompanyName:
			err = required(r.CompanyName, ErrEmptyCompanyName)
		case FieldFirstName:
			err = required(r.FirstName, ErrEmptyFirstName)
		case FieldLastName:
			err = required(r.LastName, ErrEmptyLastName)
		case FieldEmail, FieldPassword:
			err = v.validateCredentials(ctx, models.Credentials{Email: r.Email, Password: r.Password}, f)
		default:
			err = ErrUnknownField
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func required(value string, errEmpty error) error {
	if strings.TrimSpace(value) == "" {
		return errEmpty
	}
	return nil
}

// validateEmail only checks the shape local@domain; the backend owns the
// real rules.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}
	return nil
}

func validateBirthDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return ErrEmptyBirthDate
	}
	if _, err := time.Parse(canonicalDateLayout, date); err != nil {
		return ErrInvalidBirthDate
	}
	return nil
}
