// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_UnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    Toggle
		wantErr bool
	}{
		{"true", ToggleOn, false},
		{"1", ToggleOn, false},
		{"false", ToggleOff, false},
		{"0", ToggleOff, false},
		{"maybe", ToggleUnset, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Toggle
			err := got.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggle_Enabled(t *testing.T) {
	assert.False(t, ToggleUnset.Enabled())
	assert.False(t, ToggleOff.Enabled())
	assert.True(t, ToggleOn.Enabled())
}

func TestParseEnv_ExplicitFalse(t *testing.T) {
	t.Setenv("APP_CHECK_TOKEN_EXPIRY", "false")

	cfg, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, ToggleOff, cfg.App.CheckTokenExpiry)
}

func TestFlags_CheckTokenExpiryOnlyWhenGiven(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Toggle
	}{
		{"absent", nil, ToggleUnset},
		{"bare", []string{"--check-token-expiry"}, ToggleOn},
		{"explicit false", []string{"--check-token-expiry=false"}, ToggleOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
			f := NewFlags()
			f.RegisterClient(fs)
			require.NoError(t, fs.Parse(tt.args))

			assert.Equal(t, tt.want, f.Config().App.CheckTokenExpiry)
		})
	}
}

func TestGetClientConfig_FalseFlagOverridesEnvAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"check_token_expiry": true},
	})
	t.Setenv("APP_CHECK_TOKEN_EXPIRY", "true")

	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	f := NewFlags()
	f.RegisterClient(fs)
	require.NoError(t, fs.Parse([]string{"--check-token-expiry=false", "-c", path}))

	cfg, err := GetClientConfig(f.Config())
	require.NoError(t, err)
	assert.False(t, cfg.App.CheckTokenExpiry)
}

func TestGetClientConfig_EnvFalseOverridesJSONTrue(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"check_token_expiry": true},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("APP_CHECK_TOKEN_EXPIRY", "false")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.False(t, cfg.App.CheckTokenExpiry)
}

func TestGetClientConfig_UnsetLayersKeepEarlierValue(t *testing.T) {
	t.Setenv("APP_CHECK_TOKEN_EXPIRY", "true")

	cfg, err := GetClientConfig(&StructuredConfig{})
	require.NoError(t, err)
	assert.True(t, cfg.App.CheckTokenExpiry)
}
