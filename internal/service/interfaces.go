// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the data-access services of the hotel desk client.
//
// Each service validates its input with [validators.Validator] and then
// calls the hotel API through [adapter.APIClient]. Rejected input is
// returned as an [adapter.APIError] of kind KindValidation without any
// network traffic; API failures keep their [adapter.APIError] and are
// additionally tagged with a service sentinel such as [ErrNotFound].
package service

import (
	"context"

	"github.com/MKhiriev/go-hotel-desk/internal/session"
	"github.com/MKhiriev/go-hotel-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AppInfoService reports build information of the client.
type AppInfoService interface {
	// GetAppVersion returns the configured client version.
	GetAppVersion(ctx context.Context) string
}

// SessionHolder is the session state the auth service reads and restores.
type SessionHolder interface {
	session.Reader

	// Restore loads the persisted session into memory.
	Restore(ctx context.Context) error
}

// AuthService defines the client-side contract for staff authentication.
type AuthService interface {
	// Login authenticates username and installs the returned credentials.
	// Returns the authenticated user.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout drops the session in memory and in durable storage.
	Logout(ctx context.Context) error

	// Restore loads a previously persisted session. It returns
	// session.ErrNoSession when the user never logged in on this machine.
	Restore(ctx context.Context) error

	// Current describes the installed session.
	Current() (models.Session, error)
}

// RoomService manages the rooms of a property.
type RoomService interface {
	List(ctx context.Context, filter models.RoomFilter) ([]models.Room, error)
	Create(ctx context.Context, req models.CreateRoomRequest) (models.Room, error)
	Update(ctx context.Context, id int64, req models.UpdateRoomRequest) (models.Room, error)
	Delete(ctx context.Context, id int64) error

	// Availability lists the rooms free for the whole requested range.
	Availability(ctx context.Context, req models.AvailabilityRequest) ([]models.Room, error)
}

// GuestService manages guest records.
type GuestService interface {
	List(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
	Get(ctx context.Context, id int64) (models.Guest, error)

	// Bookings returns the booking history of the guest.
	Bookings(ctx context.Context, id int64) ([]models.Booking, error)

	Create(ctx context.Context, req models.CreateGuestRequest) (models.Guest, error)
	Update(ctx context.Context, id int64, req models.UpdateGuestRequest) (models.Guest, error)
	Delete(ctx context.Context, id int64) error
}

// BookingService manages reservations and their lifecycle.
type BookingService interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Create(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error)
	CheckIn(ctx context.Context, id int64) (models.Booking, error)
	CheckOut(ctx context.Context, id int64, paymentMethod string) (models.Booking, error)
	Cancel(ctx context.Context, id int64) (models.Booking, error)
}

// InvoiceService reads invoices issued by the server and estimates invoices
// for completed bookings.
type InvoiceService interface {
	// List returns the invoices issued by the server.
	List(ctx context.Context) ([]models.Invoice, error)

	// Preview estimates the invoice of booking. The second result is false
	// unless the booking is completed.
	Preview(booking models.Booking) (models.InvoicePreview, bool)

	// Previews lists the bookings matching filter and estimates an invoice
	// for every completed one.
	Previews(ctx context.Context, filter models.BookingFilter) ([]models.InvoicePreview, error)
}

// MaintenanceService manages maintenance requests.
type MaintenanceService interface {
	List(ctx context.Context, filter models.MaintenanceFilter) ([]models.Maintenance, error)
	Create(ctx context.Context, req models.CreateMaintenanceRequest) (models.Maintenance, error)
	Update(ctx context.Context, id int64, req models.UpdateMaintenanceRequest) (models.Maintenance, error)
	Delete(ctx context.Context, id int64) error
}

// HousekeepingService manages cleaning tasks.
type HousekeepingService interface {
	List(ctx context.Context) ([]models.Housekeeping, error)
	Create(ctx context.Context, req models.CreateHousekeepingRequest) (models.Housekeeping, error)
}

// UserService manages staff accounts.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
}

// NotificationService reads notifications sent by the property.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
}
