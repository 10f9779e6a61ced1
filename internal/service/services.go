// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
)

type Services struct {
	AppInfoService      AppInfoService
	AuthService         AuthService
	RoomService         RoomService
	GuestService        GuestService
	BookingService      BookingService
	InvoiceService      InvoiceService
	MaintenanceService  MaintenanceService
	HousekeepingService HousekeepingService
	UserService         UserService
	NotificationService NotificationService
}

func NewServices(cfg config.ClientApp, api adapter.APIClient, session SessionHolder, logger *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewHotelValidator()
	bookingSvc := NewBookingService(api, validator, logger)

	return &Services{
		AppInfoService:      appInfoSvc,
		AuthService:         NewAuthService(api, session, validator, logger),
		RoomService:         NewRoomService(api, validator),
		GuestService:        NewGuestService(api, validator),
		BookingService:      bookingSvc,
		InvoiceService:      NewInvoiceService(api, bookingSvc, cfg.InvoiceTaxRate, logger),
		MaintenanceService:  NewMaintenanceService(api, validator),
		HousekeepingService: NewHousekeepingService(api, validator),
		UserService:         NewUserService(api, validator),
		NotificationService: NewNotificationService(api),
	}, nil
}
