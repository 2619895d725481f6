// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/session"
	"github.com/MKhiriev/go-patient-keeper/internal/stubserver"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authRecorder remembers the Authorization header of every request that
// reaches the stub.
type authRecorder struct {
	mu      sync.Mutex
	headers []string
}

func (a *authRecorder) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		a.headers = append(a.headers, r.Header.Get("Authorization"))
		a.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (a *authRecorder) last() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.headers[len(a.headers)-1]
}

type e2eEnv struct {
	adapter  adapter.ServerAdapter
	session  *session.Session
	recorder *authRecorder
	stubCfg  config.StubConfig
}

func newE2E(t *testing.T, tokenDuration time.Duration) *e2eEnv {
	t.Helper()
	return newE2EAt(t, tokenDuration, config.DefaultBasePath)
}

// newE2EAt runs the stub and points the client at it, both using basePath.
func newE2EAt(t *testing.T, tokenDuration time.Duration, basePath string) *e2eEnv {
	t.Helper()

	stubCfg := config.StubConfig{
		HTTPAddress:   "localhost:0",
		TokenSignKey:  "e2e-key",
		TokenIssuer:   "e2e",
		TokenDuration: tokenDuration,
		BasePath:      basePath,
	}
	rec := &authRecorder{}
	srv := httptest.NewServer(rec.wrap(stubserver.NewHandler(stubCfg, logger.Nop()).Init()))
	t.Cleanup(srv.Close)

	sess := session.New(session.NewMemoryStorage(), logger.Nop())
	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		BasePath:       basePath,
		RequestTimeout: 5 * time.Second,
	}, sess, logger.Nop())
	require.NoError(t, err)

	return &e2eEnv{adapter: a, session: sess, recorder: rec, stubCfg: stubCfg}
}

func (e *e2eEnv) register(t *testing.T, ctx context.Context) models.AuthResponse {
	t.Helper()
	resp, err := e.adapter.Register(ctx, models.RegisterRequest{
		CompanyName: "Clinica Central",
		Email:       "owner@clinic.com",
		Password:    "secret",
		FirstName:   "Owner",
		LastName:    "User",
	})
	require.NoError(t, err)
	return resp
}

func anaSilva() models.Patient {
	return models.Patient{
		FirstName:           "Ana",
		LastName:            "Silva",
		Email:               "ana@x.com",
		Phone:               "+5511999999999",
		BirthDate:           "1990-05-01",
		Gender:              "female",
		AddressStreet:       "Rua A",
		AddressNumber:       "10",
		AddressNeighborhood: "Centro",
		AddressCity:         "SP",
		AddressState:        "SP",
		AddressZipCode:      "01000-000",
	}
}

func TestE2E_RegisterLoginAndToken(t *testing.T) {
	env := newE2E(t, time.Hour)
	ctx := context.Background()

	registered := env.register(t, ctx)
	assert.Equal(t, "Clinica Central", registered.User.Company.Name)

	logged, err := env.adapter.Login(ctx, models.Credentials{Email: "owner@clinic.com", Password: "secret"})
	require.NoError(t, err)

	current, err := env.session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, logged.Token, current.Token)
	assert.Equal(t, "owner@clinic.com", current.User.Email)

	_, err = env.adapter.ListPatients(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+logged.Token, env.recorder.last(), "token must be attached unchanged")

	_, err = env.adapter.Login(ctx, models.Credentials{Email: "owner@clinic.com", Password: "wrong"})
	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestE2E_AnaSilva(t *testing.T) {
	env := newE2E(t, time.Hour)
	ctx := context.Background()
	env.register(t, ctx)

	submitted := anaSilva()
	created, err := env.adapter.CreatePatient(ctx, submitted)
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "1990-05-01", created.BirthDate, "wire date must come back canonical")
	assert.Equal(t, submitted, created.WithoutServerFields())

	fetched, err := env.adapter.GetPatient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestE2E_UpdateDeleteList(t *testing.T) {
	env := newE2E(t, time.Hour)
	ctx := context.Background()
	env.register(t, ctx)

	first, err := env.adapter.CreatePatient(ctx, anaSilva())
	require.NoError(t, err)
	second, err := env.adapter.CreatePatient(ctx, anaSilva())
	require.NoError(t, err)

	changed := anaSilva()
	changed.LastName = "Souza"
	changed.BirthDate = "2000-12-31"
	updated, err := env.adapter.UpdatePatient(ctx, first.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Souza", updated.LastName)
	assert.Equal(t, "2000-12-31", updated.BirthDate)

	require.NoError(t, env.adapter.DeletePatient(ctx, second.ID))

	patients, err := env.adapter.ListPatients(ctx)
	require.NoError(t, err)
	for _, p := range patients {
		assert.NotEqual(t, second.ID, p.ID, "deleted patient must not be listed")
	}
	require.Len(t, patients, 1)
	assert.Equal(t, updated, patients[0])

	_, err = env.adapter.GetPatient(ctx, second.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.EqualError(t, err, "Patient not found")
}

func TestE2E_UnauthorizedClearsSession(t *testing.T) {
	// tokens expire immediately, so the first authenticated call is a 401
	env := newE2E(t, time.Nanosecond)
	ctx := context.Background()
	env.register(t, ctx)
	require.True(t, env.session.IsAuthenticated(ctx))

	_, err := env.adapter.ListPatients(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, env.session.IsAuthenticated(ctx), "401 must clear the session")

	_, err = env.adapter.ListPatients(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, env.recorder.last(), "next call must be unauthenticated")
}

func TestE2E_ServerRejection(t *testing.T) {
	env := newE2E(t, time.Hour)
	ctx := context.Background()
	env.register(t, ctx)

	bad := anaSilva()
	bad.BirthDate = "1990-02-30"
	_, err := env.adapter.CreatePatient(ctx, bad)

	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, "Invalid birth date, expected dd/MM/yyyy", apiErr.Message)
	assert.True(t, env.session.IsAuthenticated(ctx), "a 400 must not touch the session")
}

func TestE2E_FailedLoginKeepsSession(t *testing.T) {
	env := newE2E(t, time.Hour)
	ctx := context.Background()
	registered := env.register(t, ctx)

	_, err := env.adapter.Login(ctx, models.Credentials{Email: "owner@clinic.com", Password: "wrong"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.EqualError(t, err, "Invalid email or password")

	token, err := env.session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, registered.Token, token, "a rejected login must not end the current session")

	_, err = env.adapter.ListPatients(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+registered.Token, env.recorder.last())
}

func TestE2E_DuplicateRegistrationKeepsSession(t *testing.T) {
	env := newE2E(t, time.Hour)
	ctx := context.Background()
	registered := env.register(t, ctx)

	_, err := env.adapter.Register(ctx, models.RegisterRequest{
		CompanyName: "Other Clinic",
		Email:       "owner@clinic.com",
		Password:    "secret",
		FirstName:   "Second",
		LastName:    "Owner",
	})
	assert.ErrorIs(t, err, adapter.ErrConflict)

	token, err := env.session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, registered.Token, token)
}

func TestE2E_CustomBasePath(t *testing.T) {
	env := newE2EAt(t, time.Hour, "/v1")
	ctx := context.Background()
	env.register(t, ctx)

	created, err := env.adapter.CreatePatient(ctx, anaSilva())
	require.NoError(t, err)

	got, err := env.adapter.GetPatient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
