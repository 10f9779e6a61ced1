// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
	"github.com/MKhiriev/go-hotel-desk/models"
)

const bookingsCollection = "bookings"

type bookingService struct {
	api       adapter.APIClient
	validator validators.Validator

	logger *logger.Logger
}

func NewBookingService(api adapter.APIClient, validator validators.Validator, logger *logger.Logger) BookingService {
	return &bookingService{api: api, validator: validator, logger: logger}
}

func (s *bookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if err := validate(ctx, s.validator, filter); err != nil {
		return nil, err
	}
	return call[[]models.Booking](ctx, s.api, http.MethodGet, "/"+bookingsCollection, nil, filter.QueryParams())
}

func (s *bookingService) Create(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Booking{}, err
	}

	booking, err := call[models.Booking](ctx, s.api, http.MethodPost, "/"+bookingsCollection, req.Payload(), nil)
	if err != nil {
		return models.Booking{}, err
	}

	s.logger.Info().
		Str("func", "bookingService.Create").
		Int64("booking_id", booking.ID).
		Int64("room_id", booking.RoomID).
		Msg("booking created")
	return booking, nil
}

func (s *bookingService) CheckIn(ctx context.Context, id int64) (models.Booking, error) {
	return s.transition(ctx, id, "check-in", nil)
}

func (s *bookingService) CheckOut(ctx context.Context, id int64, paymentMethod string) (models.Booking, error) {
	req := models.CheckOutRequest{PaymentMethod: paymentMethod}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Booking{}, err
	}
	return s.transition(ctx, id, "check-out", req)
}

func (s *bookingService) Cancel(ctx context.Context, id int64) (models.Booking, error) {
	return s.transition(ctx, id, "cancel", nil)
}

// transition moves booking id through the lifecycle action.
func (s *bookingService) transition(ctx context.Context, id int64, action string, body any) (models.Booking, error) {
	if err := validateID(id); err != nil {
		return models.Booking{}, err
	}

	booking, err := call[models.Booking](ctx, s.api, http.MethodPut, resourcePath(bookingsCollection, id, action), body, nil)
	if err != nil {
		return models.Booking{}, err
	}

	s.logger.Info().
		Str("func", "bookingService.transition").
		Int64("booking_id", id).
		Str("action", action).
		Str("status", string(booking.Status)).
		Msg("booking updated")
	return booking, nil
}
