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

type housekeepingService struct {
	api       adapter.APIClient
	validator validators.Validator
}

func NewHousekeepingService(api adapter.APIClient, validator validators.Validator) HousekeepingService {
	return &housekeepingService{api: api, validator: validator}
}

func (s *housekeepingService) List(ctx context.Context) ([]models.Housekeeping, error) {
	return call[[]models.Housekeeping](ctx, s.api, http.MethodGet, "/housekeepings", nil, nil)
}

func (s *housekeepingService) Create(ctx context.Context, req models.CreateHousekeepingRequest) (models.Housekeeping, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Housekeeping{}, err
	}
	return call[models.Housekeeping](ctx, s.api, http.MethodPost, "/housekeepings", req, nil)
}

type userService struct {
	api       adapter.APIClient
	validator validators.Validator
}

func NewUserService(api adapter.APIClient, validator validators.Validator) UserService {
	return &userService{api: api, validator: validator}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return call[[]models.User](ctx, s.api, http.MethodGet, "/users", nil, nil)
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}
	return call[models.User](ctx, s.api, http.MethodPost, "/users", req, nil)
}

type notificationService struct {
	api adapter.APIClient
}

func NewNotificationService(api adapter.APIClient) NotificationService {
	return &notificationService{api: api}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return call[[]models.Notification](ctx, s.api, http.MethodGet, "/notifications", nil, nil)
}
