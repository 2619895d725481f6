// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration request body. It creates a company
// and its first user in one step.
type RegisterRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// MarshalJSON implements [json.Marshaler]. The company name is sent under
// both "companyName" and "company" because backend revisions disagree on
// the key; each ignores the one it does not know.
func (r RegisterRequest) MarshalJSON() ([]byte, error) {
	type alias RegisterRequest
	return json.Marshal(struct {
		alias
		Company string `json:"company"`
	}{
		alias:   alias(r),
		Company: r.CompanyName,
	})
}

// UnmarshalJSON implements [json.Unmarshaler], accepting either key for the
// company name. "companyName" wins when both are present.
func (r *RegisterRequest) UnmarshalJSON(b []byte) error {
	type alias RegisterRequest
	var v struct {
		alias
		Company string `json:"company"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*r = RegisterRequest(v.alias)
	if r.CompanyName == "" {
		r.CompanyName = v.Company
	}
	return nil
}

// AuthResponse is returned by both login and registration.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// Session converts the response into the session it establishes.
func (a AuthResponse) Session() Session {
	return Session{Token: a.Token, User: a.User}
}
