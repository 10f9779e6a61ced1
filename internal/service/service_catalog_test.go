// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hotel-desk/internal/mock"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
	"github.com/MKhiriev/go-hotel-desk/models"
)

func newMockAPI(t *testing.T) *mock.MockAPIClient {
	t.Helper()
	return mock.NewMockAPIClient(gomock.NewController(t))
}

func TestGuestService(t *testing.T) {
	ctx := context.Background()

	t.Run("list by tier", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().
			Request(ctx, http.MethodGet, "/guests", nil, map[string]string{"loyalty_tier": "Gold"}).
			Return(json.RawMessage(`[{"id":1,"name":"Ada","loyalty_tier":"Gold"}]`), nil)

		got, err := svc.List(ctx, models.GuestFilter{LoyaltyTier: models.LoyaltyGold})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ada", got[0].Name)
	})

	t.Run("list with bad email filter", func(t *testing.T) {
		svc := NewGuestService(newMockAPI(t), validators.NewHotelValidator())

		_, err := svc.List(ctx, models.GuestFilter{Email: "not-an-email"})

		requireValidationError(t, err)
		assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	})

	t.Run("get", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().
			Request(ctx, http.MethodGet, "/guests/3", nil, gomock.Nil()).
			Return(json.RawMessage(`{"id":3,"name":"Grace","email":"grace@example.com"}`), nil)

		got, err := svc.Get(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "grace@example.com", got.Email)
	})

	t.Run("get missing guest", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().Request(ctx, http.MethodGet, "/guests/99", nil, gomock.Nil()).Return(nil, statusError(http.StatusNotFound))

		_, err := svc.Get(ctx, 99)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("booking history", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().
			Request(ctx, http.MethodGet, "/guests/3/bookings", nil, gomock.Nil()).
			Return(json.RawMessage(`[{"id":1,"guest_id":3},{"id":2,"guest_id":3}]`), nil)

		got, err := svc.Bookings(ctx, 3)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("create", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		req := models.CreateGuestRequest{Name: "Ada", Email: "ada@example.com", PropertyID: 1, GDPRConsent: true}
		mockAPI.EXPECT().
			Request(ctx, http.MethodPost, "/guests", req, gomock.Nil()).
			Return(json.RawMessage(`{"id":5,"name":"Ada","email":"ada@example.com","loyalty_tier":"None"}`), nil)

		got, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, models.LoyaltyNone, got.LoyaltyTier)
	})

	t.Run("create duplicate email", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().Request(ctx, http.MethodPost, "/guests", gomock.Any(), gomock.Nil()).Return(nil, statusError(http.StatusConflict))

		_, err := svc.Create(ctx, models.CreateGuestRequest{Name: "Ada", Email: "ada@example.com", PropertyID: 1})

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("update without fields", func(t *testing.T) {
		svc := NewGuestService(newMockAPI(t), validators.NewHotelValidator())

		_, err := svc.Update(ctx, 3, models.UpdateGuestRequest{})

		requireValidationError(t, err)
		assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
	})

	t.Run("update", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		tier := models.LoyaltySilver
		req := models.UpdateGuestRequest{LoyaltyTier: &tier}
		mockAPI.EXPECT().
			Request(ctx, http.MethodPut, "/guests/3", req, gomock.Nil()).
			Return(json.RawMessage(`{"id":3,"loyalty_tier":"Silver"}`), nil)

		got, err := svc.Update(ctx, 3, req)

		require.NoError(t, err)
		assert.Equal(t, models.LoyaltySilver, got.LoyaltyTier)
	})

	t.Run("delete", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewGuestService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().Request(ctx, http.MethodDelete, "/guests/3", nil, gomock.Nil()).Return(nil, nil)

		require.NoError(t, svc.Delete(ctx, 3))
	})

	t.Run("delete invalid id", func(t *testing.T) {
		svc := NewGuestService(newMockAPI(t), validators.NewHotelValidator())

		requireValidationError(t, svc.Delete(ctx, 0))
	})
}

func TestMaintenanceService(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewMaintenanceService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().
			Request(ctx, http.MethodGet, "/maintenance", nil, map[string]string{"status": "Open", "room_id": "4"}).
			Return(json.RawMessage(`[{"id":1,"room_id":4,"status":"Open","priority":"High"}]`), nil)

		got, err := svc.List(ctx, models.MaintenanceFilter{Status: models.MaintenanceOpen, RoomID: 4})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.PriorityHigh, got[0].Priority)
	})

	t.Run("list with unknown priority", func(t *testing.T) {
		svc := NewMaintenanceService(newMockAPI(t), validators.NewHotelValidator())

		_, err := svc.List(ctx, models.MaintenanceFilter{Priority: "Urgent"})

		requireValidationError(t, err)
		assert.ErrorIs(t, err, validators.ErrInvalidPriority)
	})

	t.Run("create", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewMaintenanceService(mockAPI, validators.NewHotelValidator())

		req := models.CreateMaintenanceRequest{RoomID: 4, Description: "leaking tap", Priority: models.PriorityMedium, PropertyID: 1}
		mockAPI.EXPECT().
			Request(ctx, http.MethodPost, "/maintenance", req, gomock.Nil()).
			Return(json.RawMessage(`{"id":2,"room_id":4,"description":"leaking tap","status":"Open","priority":"Medium"}`), nil)

		got, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, models.MaintenanceOpen, got.Status)
	})

	t.Run("create without description", func(t *testing.T) {
		svc := NewMaintenanceService(newMockAPI(t), validators.NewHotelValidator())

		_, err := svc.Create(ctx, models.CreateMaintenanceRequest{RoomID: 4, PropertyID: 1})

		requireValidationError(t, err)
		assert.ErrorIs(t, err, validators.ErrEmptyDescription)
	})

	t.Run("resolve", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewMaintenanceService(mockAPI, validators.NewHotelValidator())

		status := models.MaintenanceResolved
		req := models.UpdateMaintenanceRequest{Status: &status}
		mockAPI.EXPECT().
			Request(ctx, http.MethodPut, "/maintenance/2", req, gomock.Nil()).
			Return(json.RawMessage(`{"id":2,"status":"Resolved"}`), nil)

		got, err := svc.Update(ctx, 2, req)

		require.NoError(t, err)
		assert.Equal(t, models.MaintenanceResolved, got.Status)
	})

	t.Run("delete", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewMaintenanceService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().Request(ctx, http.MethodDelete, "/maintenance/2", nil, gomock.Nil()).Return(nil, statusError(http.StatusInternalServerError))

		assert.ErrorIs(t, svc.Delete(ctx, 2), ErrServerFailure)
	})
}

func TestHousekeepingService(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewHousekeepingService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().
			Request(ctx, http.MethodGet, "/housekeepings", nil, gomock.Nil()).
			Return(json.RawMessage(`[{"id":1,"room_id":4,"status":"In Progress"}]`), nil)

		got, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.HousekeepingInProgress, got[0].Status)
	})

	t.Run("create", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewHousekeepingService(mockAPI, validators.NewHotelValidator())

		req := models.CreateHousekeepingRequest{RoomID: 4, AssigneeID: 2, PropertyID: 1}
		mockAPI.EXPECT().
			Request(ctx, http.MethodPost, "/housekeepings", req, gomock.Nil()).
			Return(json.RawMessage(`{"id":3,"room_id":4,"status":"Pending","assignee_id":2}`), nil)

		got, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, models.HousekeepingPending, got.Status)
	})

	t.Run("create with unknown status", func(t *testing.T) {
		svc := NewHousekeepingService(newMockAPI(t), validators.NewHotelValidator())

		_, err := svc.Create(ctx, models.CreateHousekeepingRequest{RoomID: 4, Status: "Sparkling", PropertyID: 1})

		requireValidationError(t, err)
		assert.ErrorIs(t, err, validators.ErrInvalidStatus)
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewUserService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().
			Request(ctx, http.MethodGet, "/users", nil, gomock.Nil()).
			Return(json.RawMessage(`[{"id":1,"username":"frontdesk","role":"Receptionist"}]`), nil)

		got, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.RoleReceptionist, got[0].Role)
	})

	t.Run("create", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewUserService(mockAPI, validators.NewHotelValidator())

		req := models.CreateUserRequest{Username: "night", Email: "night@example.com", Password: "secret", Role: models.RoleManager, PropertyID: 1}
		mockAPI.EXPECT().
			Request(ctx, http.MethodPost, "/users", req, gomock.Nil()).
			Return(json.RawMessage(`{"id":2,"username":"night","role":"Manager"}`), nil)

		got, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("create with unknown role", func(t *testing.T) {
		svc := NewUserService(newMockAPI(t), validators.NewHotelValidator())

		_, err := svc.Create(ctx, models.CreateUserRequest{Username: "x", Email: "x@example.com", Password: "p", Role: "Owner", PropertyID: 1})

		requireValidationError(t, err)
		assert.ErrorIs(t, err, validators.ErrInvalidRole)
	})

	t.Run("create forbidden", func(t *testing.T) {
		mockAPI := newMockAPI(t)
		svc := NewUserService(mockAPI, validators.NewHotelValidator())

		mockAPI.EXPECT().Request(ctx, http.MethodPost, "/users", gomock.Any(), gomock.Nil()).Return(nil, statusError(http.StatusForbidden))

		_, err := svc.Create(ctx, models.CreateUserRequest{Username: "x", Email: "x@example.com", Password: "p", Role: models.RoleHousekeeping, PropertyID: 1})

		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	mockAPI := newMockAPI(t)
	svc := NewNotificationService(mockAPI)

	mockAPI.EXPECT().
		Request(ctx, http.MethodGet, "/notifications", nil, gomock.Nil()).
		Return(json.RawMessage(`[{"id":1,"type":"Email","message":"Booking confirmed","related_entity_id":4,"entity_type":"booking"}]`), nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Booking confirmed", got[0].Message)
	assert.Equal(t, int64(4), got[0].RelatedEntityID)
}
