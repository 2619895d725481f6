// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName           = errors.New("first name is required")
	ErrEmptyLastName            = errors.New("last name is required")
	ErrEmptyEmail               = errors.New("email is required")
	ErrInvalidEmail             = errors.New("email is invalid")
	ErrEmptyPhone               = errors.New("phone is required")
	ErrEmptyBirthDate           = errors.New("birth date is required")
	ErrInvalidBirthDate         = errors.New("birth date must be a valid yyyy-MM-dd date")
	ErrEmptyGender              = errors.New("gender is required")
	ErrEmptyAddressStreet       = errors.New("street is required")
	ErrEmptyAddressNumber       = errors.New("address number is required")
	ErrEmptyAddressNeighborhood = errors.New("neighborhood is required")
	ErrEmptyAddressCity         = errors.New("city is required")
	ErrEmptyAddressState        = errors.New("state is required")
	ErrEmptyAddressZipCode      = errors.New("zip code is required")

	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyCompanyName = errors.New("company name is required")
)
