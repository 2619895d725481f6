// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by bearer tokens issued for the
// clinic API. The subject is the numeric user id; Email and CompanyID scope
// the holder to a single tenant.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email     string `json:"email,omitempty"`
	CompanyID int64  `json:"company_id,omitempty"`
}

// Token pairs a parsed JWT with its compact signed form.
type Token struct {
	// Token is the parsed JWT. Nil when only the signed string is known.
	*jwt.Token `json:"-"`

	// Claims are the decoded claims of Token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation sent in the
	// Authorization header.
	SignedString string `json:"-"`
}

// GetUserID parses the subject claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting user id from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact signed token.
func (t *Token) String() string {
	return t.SignedString
}
