// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
	"github.com/MKhiriev/go-hotel-desk/models"
)

const guestsCollection = "guests"

type guestService struct {
	api       adapter.APIClient
	validator validators.Validator
}

func NewGuestService(api adapter.APIClient, validator validators.Validator) GuestService {
	return &guestService{api: api, validator: validator}
}

func (s *guestService) List(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error) {
	if err := validate(ctx, s.validator, filter); err != nil {
		return nil, err
	}
	return call[[]models.Guest](ctx, s.api, http.MethodGet, "/"+guestsCollection, nil, filter.QueryParams())
}

func (s *guestService) Get(ctx context.Context, id int64) (models.Guest, error) {
	if err := validateID(id); err != nil {
		return models.Guest{}, err
	}
	return call[models.Guest](ctx, s.api, http.MethodGet, resourcePath(guestsCollection, id), nil, nil)
}

func (s *guestService) Bookings(ctx context.Context, id int64) ([]models.Booking, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return call[[]models.Booking](ctx, s.api, http.MethodGet, resourcePath(guestsCollection, id, "bookings"), nil, nil)
}

func (s *guestService) Create(ctx context.Context, req models.CreateGuestRequest) (models.Guest, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Guest{}, err
	}
	return call[models.Guest](ctx, s.api, http.MethodPost, "/"+guestsCollection, req, nil)
}

func (s *guestService) Update(ctx context.Context, id int64, req models.UpdateGuestRequest) (models.Guest, error) {
	if err := validateID(id); err != nil {
		return models.Guest{}, err
	}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Guest{}, err
	}
	return call[models.Guest](ctx, s.api, http.MethodPut, resourcePath(guestsCollection, id), req, nil)
}

func (s *guestService) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return exec(ctx, s.api, http.MethodDelete, resourcePath(guestsCollection, id))
}
