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

const maintenanceCollection = "maintenance"

type maintenanceService struct {
	api       adapter.APIClient
	validator validators.Validator
}

func NewMaintenanceService(api adapter.APIClient, validator validators.Validator) MaintenanceService {
	return &maintenanceService{api: api, validator: validator}
}

func (s *maintenanceService) List(ctx context.Context, filter models.MaintenanceFilter) ([]models.Maintenance, error) {
	if err := validate(ctx, s.validator, filter); err != nil {
		return nil, err
	}
	return call[[]models.Maintenance](ctx, s.api, http.MethodGet, "/"+maintenanceCollection, nil, filter.QueryParams())
}

func (s *maintenanceService) Create(ctx context.Context, req models.CreateMaintenanceRequest) (models.Maintenance, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Maintenance{}, err
	}
	return call[models.Maintenance](ctx, s.api, http.MethodPost, "/"+maintenanceCollection, req, nil)
}

func (s *maintenanceService) Update(ctx context.Context, id int64, req models.UpdateMaintenanceRequest) (models.Maintenance, error) {
	if err := validateID(id); err != nil {
		return models.Maintenance{}, err
	}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Maintenance{}, err
	}
	return call[models.Maintenance](ctx, s.api, http.MethodPut, resourcePath(maintenanceCollection, id), req, nil)
}

func (s *maintenanceService) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return exec(ctx, s.api, http.MethodDelete, resourcePath(maintenanceCollection, id))
}
