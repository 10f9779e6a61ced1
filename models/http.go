// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// DateLayout is the calendar date format used by the hotel API for
// check-in/check-out and availability ranges.
const DateLayout = "2006-01-02"

// LoginRequest is the payload of POST /users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the payload of POST /users/refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RoomFilter narrows GET /rooms. Zero fields are not sent.
type RoomFilter struct {
	Status RoomStatus
	Floor  int
}

// QueryParams renders the filter as query parameters.
func (f RoomFilter) QueryParams() map[string]string {
	params := make(map[string]string)
	if f.Status != "" {
		params["status"] = string(f.Status)
	}
	if f.Floor != 0 {
		params["floor"] = strconv.Itoa(f.Floor)
	}
	return params
}

// AvailabilityRequest queries GET /rooms/availability for a date range.
type AvailabilityRequest struct {
	StartDate  time.Time
	EndDate    time.Time
	RoomTypeID int64
	PropertyID int64
}

// QueryParams renders the request as query parameters.
func (r AvailabilityRequest) QueryParams() map[string]string {
	params := map[string]string{
		"start_date":  r.StartDate.Format(DateLayout),
		"end_date":    r.EndDate.Format(DateLayout),
		"property_id": strconv.FormatInt(r.PropertyID, 10),
	}
	if r.RoomTypeID != 0 {
		params["room_type_id"] = strconv.FormatInt(r.RoomTypeID, 10)
	}
	return params
}

// GuestFilter narrows GET /guests.
type GuestFilter struct {
	Email       string
	LoyaltyTier LoyaltyTier
}

// QueryParams renders the filter as query parameters.
func (f GuestFilter) QueryParams() map[string]string {
	params := make(map[string]string)
	if f.Email != "" {
		params["email"] = f.Email
	}
	if f.LoyaltyTier != "" {
		params["loyalty_tier"] = string(f.LoyaltyTier)
	}
	return params
}

// BookingFilter narrows GET /bookings to a date range.
type BookingFilter struct {
	StartDate time.Time
	EndDate   time.Time
}

// QueryParams renders the filter as query parameters.
func (f BookingFilter) QueryParams() map[string]string {
	params := make(map[string]string)
	if !f.StartDate.IsZero() {
		params["start_date"] = f.StartDate.Format(DateLayout)
	}
	if !f.EndDate.IsZero() {
		params["end_date"] = f.EndDate.Format(DateLayout)
	}
	return params
}

// MaintenanceFilter narrows GET /maintenance.
type MaintenanceFilter struct {
	Status   MaintenanceStatus
	Priority MaintenancePriority
	RoomID   int64
}

// QueryParams renders the filter as query parameters.
func (f MaintenanceFilter) QueryParams() map[string]string {
	params := make(map[string]string)
	if f.Status != "" {
		params["status"] = string(f.Status)
	}
	if f.Priority != "" {
		params["priority"] = string(f.Priority)
	}
	if f.RoomID != 0 {
		params["room_id"] = strconv.FormatInt(f.RoomID, 10)
	}
	return params
}
