// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/mock"
	"github.com/MKhiriev/go-hotel-desk/internal/session"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
	"github.com/MKhiriev/go-hotel-desk/models"
)

// newTestAuthSvc is a helper building authService on top of mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockAPIClient, *mock.MockSessionHolder) {
	t.Helper()
	mockAPI := mock.NewMockAPIClient(ctrl)
	mockSession := mock.NewMockSessionHolder(ctrl)

	svc := NewAuthService(mockAPI, mockSession, validators.NewHotelValidator(), logger.Nop()).(*authService)
	return svc, mockAPI, mockSession
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 3, Username: "alice", Role: models.RoleManager, PropertyID: 1}
	mockAPI.EXPECT().Login(ctx, "alice", "secret").Return(models.AuthResponse{
		User:         user,
		AccessToken:  "access",
		RefreshToken: "refresh",
	}, nil)

	got, err := svc.Login(ctx, "  alice ", "secret")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Login_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "alice", "")

	requireValidationError(t, err)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI, _ := newTestAuthSvc(t, ctrl)

	mockAPI.EXPECT().Login(gomock.Any(), "alice", "nope").Return(models.AuthResponse{}, statusError(http.StatusUnauthorized))

	_, err := svc.Login(context.Background(), "alice", "nope")

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.ErrorIs(t, err, adapter.ErrHTTPStatus)
}

func TestAuthService_Login_Network(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI, _ := newTestAuthSvc(t, ctrl)

	netErr := &adapter.APIError{Kind: adapter.KindNetwork, Err: errors.New("connection refused")}
	mockAPI.EXPECT().Login(gomock.Any(), "alice", "secret").Return(models.AuthResponse{}, netErr)

	_, err := svc.Login(context.Background(), "alice", "secret")

	assert.Same(t, netErr, err)
}

// ── Logout / Restore / Current ───────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().Logout(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}

func TestAuthService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSession.EXPECT().Restore(ctx).Return(nil),
		mockSession.EXPECT().Current().Return(models.Session{UserID: 3, ExpiresAt: time.Now().Add(time.Hour)}, nil),
	)

	require.NoError(t, svc.Restore(ctx))
}

func TestAuthService_Restore_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Restore(ctx).Return(session.ErrNoSession)

	err := svc.Restore(ctx)

	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestAuthService_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSession := newTestAuthSvc(t, ctrl)

	want := models.Session{UserID: 3, Username: "alice"}
	mockSession.EXPECT().Current().Return(want, nil)

	got, err := svc.Current()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
