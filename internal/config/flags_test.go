// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"localhost", "localhost:8080", "localhost:8080", false},
		{"ipv4", "127.0.0.1:9000", "127.0.0.1:9000", false},
		{"any interface", ":8080", ":8080", false},
		{"no port", "localhost", "", true},
		{"port not a number", "localhost:http", "", true},
		{"port zero", "localhost:0", "", true},
		{"port too large", "localhost:70000", "", true},
		{"hostname", "clinic.local:80", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
	assert.Equal(t, "host:port", a.Type())
}

func TestFlags_ClientGroup(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	f := NewFlags()
	f.RegisterClient(fs)

	err := fs.Parse([]string{
		"-a", "http://clinic:8080",
		"--base-path", "/v2",
		"--request-timeout", "10s",
		"-d", "flags.db",
		"--check-token-expiry",
		"--log-file", "out.log",
		"-c", "cfg.json",
	})
	require.NoError(t, err)

	cfg := f.Config()
	assert.Equal(t, "http://clinic:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/v2", cfg.Adapter.BasePath)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ToggleOn, cfg.App.CheckTokenExpiry)
	assert.Equal(t, "out.log", cfg.Log.File)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Stub.HTTPAddress)
}

func TestFlags_StubGroup(t *testing.T) {
	fs := pflag.NewFlagSet("stub", pflag.ContinueOnError)
	f := NewFlags()
	f.RegisterStub(fs)

	err := fs.Parse([]string{"-l", "127.0.0.1:9999", "--token-sign-key", "s", "--token-duration", "1h"})
	require.NoError(t, err)

	cfg := f.Config()
	assert.Equal(t, "127.0.0.1:9999", cfg.Stub.HTTPAddress)
	assert.Equal(t, "s", cfg.Stub.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Stub.TokenDuration)
}

func TestFlags_BothGroupsShareConfigFlag(t *testing.T) {
	fs := pflag.NewFlagSet("all", pflag.ContinueOnError)
	f := NewFlags()
	f.RegisterClient(fs)
	assert.NotPanics(t, func() { f.RegisterStub(fs) })
}

func TestFlags_UnsetLeavesZero(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	f := NewFlags()
	f.RegisterClient(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, f.Config())
}
