// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Company is the tenant a user belongs to. Patients are isolated per company
// on the backend.
type Company struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// UserSummary describes the authenticated user as returned by the backend
// alongside the token.
//
// Backends differ in what they send: some return a full object, others only
// the user's email as a bare JSON string. UnmarshalJSON accepts both.
type UserSummary struct {
	ID        int64   `json:"id,omitempty"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty"`
	Company   Company `json:"company"`
}

// UnmarshalJSON implements [json.Unmarshaler]. A JSON string is treated as
// the user's email; an object is decoded field by field; null leaves the
// receiver unchanged.
func (u *UserSummary) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var email string
		if err := json.Unmarshal(b, &email); err != nil {
			return err
		}
		*u = UserSummary{Email: email}
		return nil
	}

	// alias drops the method set so json does not recurse into UnmarshalJSON
	type alias UserSummary
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*u = UserSummary(a)
	return nil
}

// Session is the authenticated state of the client: an opaque bearer token
// and the user it was issued for.
type Session struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// IsAuthenticated reports whether the session carries a token. Token
// presence is the only criterion; expiry is not checked here.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
