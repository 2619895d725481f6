// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, "ana@x.com", 7, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, "test-issuer", token.Claims.Issuer)
	assert.Equal(t, "123", token.Claims.Subject)
	assert.Equal(t, "ana@x.com", token.Claims.Email)
	assert.Equal(t, int64(7), token.Claims.CompanyID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, "", 1, tt.duration, tt.key)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("clinic", 42, "ana@x.com", 3, time.Hour, "sign-key")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(token.SignedString, "sign-key", "clinic")
		require.NoError(t, err)

		userID, err := parsed.GetUserID()
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
		assert.Equal(t, int64(3), parsed.Claims.CompanyID)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "clinic")
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, "sign-key", "someone-else")
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not-a-jwt", "sign-key", "clinic")
		require.Error(t, err)
	})
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("clinic", 1, "", 1, -time.Minute, "sign-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "sign-key", "clinic")
	require.Error(t, err)
}

func TestParseUnverifiedExpiry(t *testing.T) {
	token, err := GenerateJWTToken("clinic", 1, "", 1, time.Hour, "sign-key")
	require.NoError(t, err)

	exp, ok, err := ParseUnverifiedExpiry(token.SignedString)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	_, _, err = ParseUnverifiedExpiry("opaque-token")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"other scheme", "Basic abc", "", true},
		{"extra parts", "Bearer a b", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
