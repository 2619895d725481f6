// Package utils provides general-purpose helper utilities used across the
// client and the backend stub: context keys, JSON response writing, the
// resty client constructor, JWT helpers, trace ids and date conversion
// between the backend wire format and the canonical client form.
package utils

import (
	"context"

	"github.com/MKhiriev/go-patient-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which authenticated token claims are stored
// in a request context.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.TokenClaims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the token claims stored by [WithClaims].
//
// ok is false when no claims are present or the value has an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.TokenClaims)
	return claims, ok
}
