// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid ID")
	ErrInvalidPropertyID  = errors.New("invalid property ID")
	ErrInvalidRoomID      = errors.New("invalid room ID")
	ErrInvalidGuestID     = errors.New("invalid guest ID")
	ErrInvalidRoomTypeID  = errors.New("invalid room type ID")
	ErrInvalidAssigneeID  = errors.New("invalid assignee ID")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyRoomNumber    = errors.New("room number is required")
	ErrInvalidFloor       = errors.New("invalid floor")
	ErrInvalidRoomStatus  = errors.New("invalid room status")
	ErrEmptyGuestName     = errors.New("guest name is required")
	ErrInvalidLoyaltyTier = errors.New("invalid loyalty tier")
	ErrInvalidLoyalty     = errors.New("loyalty points cannot be negative")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrEmptyDate          = errors.New("date is required")
	ErrInvalidRate        = errors.New("rate cannot be negative")
	ErrEmptyPaymentMethod = errors.New("payment method is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
