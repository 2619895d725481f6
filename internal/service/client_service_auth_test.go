// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-keeper/internal/adapter"
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/mock"
	"github.com/MKhiriev/go-patient-keeper/internal/validators"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc wires a clientAuthService with mocks and the real validator.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.ClientApp,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockSessionManager,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)

	svc := NewClientAuthService(mockAdapter, mockSession, validators.NewPatientValidator(), cfg, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockSession
}

var (
	testCreds = models.Credentials{Email: "ana@clinic.com", Password: "secret"}
	testUser  = models.UserSummary{ID: 1, Email: "ana@clinic.com", Company: models.Company{ID: 7, Name: "Clinic"}}
)

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, testCreds).Return(models.AuthResponse{Token: "tok", User: testUser}, nil)

	got, err := svc.Login(ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, models.Session{Token: "tok", User: testUser}, got)
}

func TestClientAuthService_Login_InvalidInputNeverReachesAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations on the adapter: any call fails the test
	svc, _, _ := newTestAuthSvc(t, ctrl, config.ClientApp{})

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ana@clinic.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, testCreds).Return(models.AuthResponse{},
		&adapter.APIError{Op: "login", StatusCode: 401, Message: "Invalid credentials", Err: adapter.ErrUnauthorized})

	_, err := svc.Login(ctx, testCreds)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid credentials")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register(t *testing.T) {
	details := models.RegisterRequest{
		CompanyName: "Clinic",
		Email:       "ana@clinic.com",
		Password:    "secret",
		FirstName:   "Ana",
		LastName:    "Silva",
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, config.ClientApp{})
		ctx := context.Background()

		mockAdapter.EXPECT().Register(ctx, details).Return(models.AuthResponse{Token: "tok", User: testUser}, nil)

		got, err := svc.Register(ctx, details)
		require.NoError(t, err)
		assert.Equal(t, "tok", got.Token)
	})

	t.Run("missing company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAuthSvc(t, ctrl, config.ClientApp{})

		bad := details
		bad.CompanyName = "  "
		_, err := svc.Register(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, validators.ErrEmptyCompanyName)
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, config.ClientApp{})
		ctx := context.Background()

		mockAdapter.EXPECT().Register(ctx, details).Return(models.AuthResponse{},
			&adapter.APIError{Op: "register", StatusCode: 409, Message: "Email already registered", Err: adapter.ErrConflict})

		_, err := svc.Register(ctx, details)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
		assert.EqualError(t, err, "Email already registered")
	})
}

// ── Logout / CurrentSession ──────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSession := newTestAuthSvc(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	mockSession.EXPECT().Clear(ctx).Return(nil)
	require.NoError(t, svc.Logout(ctx))

	storageErr := errors.New("disk full")
	mockSession.EXPECT().Clear(ctx).Return(storageErr)
	assert.ErrorIs(t, svc.Logout(ctx), storageErr)
}

func TestClientAuthService_CurrentSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSession := newTestAuthSvc(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	mockSession.EXPECT().Current(ctx).Return(models.Session{}, nil)
	_, err := svc.CurrentSession(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	want := models.Session{Token: "tok", User: testUser}
	mockSession.EXPECT().Current(ctx).Return(want, nil)
	got, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stored := models.Session{Token: "tok", User: testUser}

	tests := []struct {
		name        string
		checkExpiry bool
		setup       func(ctx context.Context, m *mock.MockSessionManager)
		want        models.Session
		wantErr     error
	}{
		{
			name: "no session",
			setup: func(ctx context.Context, m *mock.MockSessionManager) {
				m.EXPECT().Current(ctx).Return(models.Session{}, nil)
			},
		},
		{
			name: "expiry not checked",
			setup: func(ctx context.Context, m *mock.MockSessionManager) {
				m.EXPECT().Current(ctx).Return(stored, nil)
			},
			want: stored,
		},
		{
			name:        "still valid",
			checkExpiry: true,
			setup: func(ctx context.Context, m *mock.MockSessionManager) {
				m.EXPECT().Current(ctx).Return(stored, nil)
				m.EXPECT().ExpiresAt(ctx).Return(now.Add(time.Hour), true, nil)
			},
			want: stored,
		},
		{
			name:        "no exp claim",
			checkExpiry: true,
			setup: func(ctx context.Context, m *mock.MockSessionManager) {
				m.EXPECT().Current(ctx).Return(stored, nil)
				m.EXPECT().ExpiresAt(ctx).Return(time.Time{}, false, nil)
			},
			want: stored,
		},
		{
			name:        "expired",
			checkExpiry: true,
			setup: func(ctx context.Context, m *mock.MockSessionManager) {
				m.EXPECT().Current(ctx).Return(stored, nil)
				m.EXPECT().ExpiresAt(ctx).Return(now.Add(-time.Minute), true, nil)
				m.EXPECT().Clear(ctx).Return(nil)
			},
			wantErr: ErrSessionExpired,
		},
		{
			name:        "undecodable",
			checkExpiry: true,
			setup: func(ctx context.Context, m *mock.MockSessionManager) {
				m.EXPECT().Current(ctx).Return(stored, nil)
				m.EXPECT().ExpiresAt(ctx).Return(time.Time{}, false, errors.New("not a jwt"))
				m.EXPECT().Clear(ctx).Return(nil)
			},
			wantErr: ErrSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockSession := newTestAuthSvc(t, ctrl, config.ClientApp{CheckTokenExpiry: tt.checkExpiry})
			svc.now = func() time.Time { return now }
			ctx := context.Background()

			tt.setup(ctx, mockSession)

			got, err := svc.RestoreSession(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.Session{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
