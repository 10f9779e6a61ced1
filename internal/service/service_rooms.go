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

const roomsCollection = "rooms"

type roomService struct {
	api       adapter.APIClient
	validator validators.Validator
}

func NewRoomService(api adapter.APIClient, validator validators.Validator) RoomService {
	return &roomService{api: api, validator: validator}
}

func (s *roomService) List(ctx context.Context, filter models.RoomFilter) ([]models.Room, error) {
	if err := validate(ctx, s.validator, filter); err != nil {
		return nil, err
	}
	return call[[]models.Room](ctx, s.api, http.MethodGet, "/"+roomsCollection, nil, filter.QueryParams())
}

func (s *roomService) Create(ctx context.Context, req models.CreateRoomRequest) (models.Room, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Room{}, err
	}
	return call[models.Room](ctx, s.api, http.MethodPost, "/"+roomsCollection, req, nil)
}

func (s *roomService) Update(ctx context.Context, id int64, req models.UpdateRoomRequest) (models.Room, error) {
	if err := validateID(id); err != nil {
		return models.Room{}, err
	}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Room{}, err
	}
	return call[models.Room](ctx, s.api, http.MethodPut, resourcePath(roomsCollection, id), req, nil)
}

func (s *roomService) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return exec(ctx, s.api, http.MethodDelete, resourcePath(roomsCollection, id))
}

func (s *roomService) Availability(ctx context.Context, req models.AvailabilityRequest) ([]models.Room, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return nil, err
	}
	return call[[]models.Room](ctx, s.api, http.MethodGet, "/"+roomsCollection+"/availability", nil, req.QueryParams())
}
