// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/mock"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
	"github.com/MKhiriev/go-hotel-desk/models"
)

func newTestBookingSvc(t *testing.T) (BookingService, *mock.MockAPIClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAPI := mock.NewMockAPIClient(ctrl)
	return NewBookingService(mockAPI, validators.NewHotelValidator(), logger.Nop()), mockAPI
}

func TestBookingService_List(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)
	ctx := context.Background()

	filter := models.BookingFilter{StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	mockAPI.EXPECT().
		Request(ctx, http.MethodGet, "/bookings", nil, map[string]string{"start_date": "2026-03-01"}).
		Return(json.RawMessage(`[{"id":1,"status":"Active"},{"id":2,"status":"Completed"}]`), nil)

	got, err := svc.List(ctx, filter)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.BookingCompleted, got[1].Status)
}

func TestBookingService_Create_SendsCalendarDates(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)
	ctx := context.Background()

	req := models.CreateBookingRequest{
		GuestID:     4,
		RoomID:      7,
		CheckIn:     time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
		Source:      "Phone",
		RateApplied: 99.5,
		PropertyID:  1,
	}
	mockAPI.EXPECT().
		Request(ctx, http.MethodPost, "/bookings", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _, _ string, body any, _ map[string]string) (json.RawMessage, error) {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			assert.JSONEq(t, `{
				"guest_id": 4,
				"room_id": 7,
				"check_in": "2026-03-01",
				"check_out": "2026-03-03",
				"source": "Phone",
				"rate_applied": 99.5,
				"property_id": 1
			}`, string(data))
			return json.RawMessage(`{"id":11,"guest_id":4,"room_id":7,"status":"Active"}`), nil
		})

	got, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, models.BookingActive, got.Status)
}

func TestBookingService_Create_InvalidRange(t *testing.T) {
	svc, _ := newTestBookingSvc(t)

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), models.CreateBookingRequest{
		GuestID: 4, RoomID: 7, CheckIn: day, CheckOut: day, PropertyID: 1,
	})

	requireValidationError(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidDateRange)
}

func TestBookingService_Create_RoomTaken(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)

	mockAPI.EXPECT().Request(gomock.Any(), http.MethodPost, "/bookings", gomock.Any(), gomock.Nil()).Return(nil, statusError(http.StatusConflict))

	_, err := svc.Create(context.Background(), models.CreateBookingRequest{
		GuestID:    4,
		RoomID:     7,
		CheckIn:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		PropertyID: 1,
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestBookingService_CheckIn(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)
	ctx := context.Background()

	mockAPI.EXPECT().
		Request(ctx, http.MethodPut, "/bookings/5/check-in", nil, gomock.Nil()).
		Return(json.RawMessage(`{"id":5,"status":"Active"}`), nil)

	got, err := svc.CheckIn(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestBookingService_CheckOut(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)
	ctx := context.Background()

	mockAPI.EXPECT().
		Request(ctx, http.MethodPut, "/bookings/5/check-out", models.CheckOutRequest{PaymentMethod: "Cash"}, gomock.Nil()).
		Return(json.RawMessage(`{"id":5,"status":"Completed"}`), nil)

	got, err := svc.CheckOut(ctx, 5, "Cash")

	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, got.Status)
}

func TestBookingService_CheckOut_NoPaymentMethod(t *testing.T) {
	svc, _ := newTestBookingSvc(t)

	_, err := svc.CheckOut(context.Background(), 5, " ")

	requireValidationError(t, err)
	assert.ErrorIs(t, err, validators.ErrEmptyPaymentMethod)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)
	ctx := context.Background()

	mockAPI.EXPECT().
		Request(ctx, http.MethodPut, "/bookings/5/cancel", nil, gomock.Nil()).
		Return(json.RawMessage(`{"id":5,"status":"Cancelled"}`), nil)

	got, err := svc.Cancel(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestBookingService_Cancel_AuthExpired(t *testing.T) {
	svc, mockAPI := newTestBookingSvc(t)

	expired := &adapter.APIError{Kind: adapter.KindAuthExpired, StatusCode: http.StatusUnauthorized}
	mockAPI.EXPECT().Request(gomock.Any(), http.MethodPut, "/bookings/5/cancel", nil, gomock.Nil()).Return(nil, expired)

	_, err := svc.Cancel(context.Background(), 5)

	assert.ErrorIs(t, err, adapter.ErrAuthExpired)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestBookingService_InvalidID(t *testing.T) {
	svc, _ := newTestBookingSvc(t)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, -1)
	requireValidationError(t, err)

	_, err = svc.Cancel(ctx, 0)
	requireValidationError(t, err)

	_, err = svc.CheckOut(ctx, 0, "Card")
	requireValidationError(t, err)
}
