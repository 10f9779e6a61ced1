// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/go-hotel-desk/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the login of a staff account.
	FieldUsername = "username"

	// FieldPassword targets the password of a staff account.
	FieldPassword = "password"

	// FieldEmail targets an email address (staff account or guest).
	FieldEmail = "email"

	// FieldRole targets the staff role of an account.
	FieldRole = "role"

	// FieldPropertyID targets the property a record belongs to.
	FieldPropertyID = "property_id"

	// FieldRoomID targets the room a record refers to.
	FieldRoomID = "room_id"

	// FieldGuestID targets the guest a booking is made for.
	FieldGuestID = "guest_id"

	// FieldRoomNumber targets the human readable number of a room.
	FieldRoomNumber = "room_number"

	// FieldFloor targets the floor of a room.
	FieldFloor = "floor"

	// FieldRoomTypeID targets the room type of a room or availability query.
	FieldRoomTypeID = "room_type_id"

	// FieldStatus targets the lifecycle status of a record.
	FieldStatus = "status"

	// FieldName targets the name of a guest.
	FieldName = "name"

	// FieldLoyaltyTier targets the loyalty tier of a guest.
	FieldLoyaltyTier = "loyalty_tier"

	// FieldLoyaltyPoints targets the loyalty balance of a guest.
	FieldLoyaltyPoints = "loyalty_points"

	// FieldDates targets a check-in/check-out or start/end date pair.
	FieldDates = "dates"

	// FieldRate targets the nightly rate applied to a booking.
	FieldRate = "rate_applied"

	// FieldPaymentMethod targets the payment method given at check-out.
	FieldPaymentMethod = "payment_method"

	// FieldDescription targets the description of a maintenance request.
	FieldDescription = "description"

	// FieldPriority targets the priority of a maintenance request.
	FieldPriority = "priority"

	// FieldAssigneeID targets the staff member a task is assigned to.
	FieldAssigneeID = "assignee_id"

	// FieldUpdate requires an update request to carry at least one field.
	FieldUpdate = "update"
)

// HotelValidator implements the Validator interface for the request models
// sent to the hotel API.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type HotelValidator struct {
}

// NewHotelValidator constructs a new HotelValidator and returns it as the
// Validator interface.
func NewHotelValidator() Validator {
	return &HotelValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Returns ErrUnsupportedType for any other type, and ErrUnknownField when a
// field name does not apply to the given type.
func (v *HotelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.CreateUserRequest:
		return v.validateCreateUser(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*value, fields...)

	case models.CreateRoomRequest:
		return v.validateCreateRoom(value, fields...)
	case *models.CreateRoomRequest:
		return v.validateCreateRoom(*value, fields...)

	case models.UpdateRoomRequest:
		return v.validateUpdateRoom(value, fields...)
	case *models.UpdateRoomRequest:
		return v.validateUpdateRoom(*value, fields...)

	case models.RoomFilter:
		return v.validateRoomFilter(value, fields...)

	case models.AvailabilityRequest:
		return v.validateAvailability(value, fields...)
	case *models.AvailabilityRequest:
		return v.validateAvailability(*value, fields...)

	case models.CreateGuestRequest:
		return v.validateCreateGuest(value, fields...)
	case *models.CreateGuestRequest:
		return v.validateCreateGuest(*value, fields...)

	case models.UpdateGuestRequest:
		return v.validateUpdateGuest(value, fields...)
	case *models.UpdateGuestRequest:
		return v.validateUpdateGuest(*value, fields...)

	case models.GuestFilter:
		return v.validateGuestFilter(value, fields...)

	case models.CreateBookingRequest:
		return v.validateCreateBooking(value, fields...)
	case *models.CreateBookingRequest:
		return v.validateCreateBooking(*value, fields...)

	case models.BookingFilter:
		return v.validateBookingFilter(value, fields...)

	case models.CheckOutRequest:
		return v.validateCheckOut(value, fields...)
	case *models.CheckOutRequest:
		return v.validateCheckOut(*value, fields...)

	case models.CreateMaintenanceRequest:
		return v.validateCreateMaintenance(value, fields...)
	case *models.CreateMaintenanceRequest:
		return v.validateCreateMaintenance(*value, fields...)

	case models.UpdateMaintenanceRequest:
		return v.validateUpdateMaintenance(value, fields...)
	case *models.UpdateMaintenanceRequest:
		return v.validateUpdateMaintenance(*value, fields...)

	case models.MaintenanceFilter:
		return v.validateMaintenanceFilter(value, fields...)

	case models.CreateHousekeepingRequest:
		return v.validateCreateHousekeeping(value, fields...)
	case *models.CreateHousekeepingRequest:
		return v.validateCreateHousekeeping(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidateID checks that id can address a record.
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == strings.TrimSpace(s)
}

// optional reports whether v is either unset or one of allowed.
func optional[T comparable](v T, allowed []T) bool {
	var zero T
	return v == zero || slices.Contains(allowed, v)
}

func unknownField(f string) error {
	return fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func (v *HotelValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCreateUser(req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail, FieldRole, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldRole:
			if !slices.Contains(models.Roles, req.Role) {
				return ErrInvalidRole
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCreateRoom(req models.CreateRoomRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomNumber, FieldFloor, FieldRoomTypeID, FieldStatus, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomNumber:
			if blank(req.RoomNumber) {
				return ErrEmptyRoomNumber
			}
		case FieldFloor:
			if req.Floor < 0 {
				return ErrInvalidFloor
			}
		case FieldRoomTypeID:
			if req.RoomTypeID <= 0 {
				return ErrInvalidRoomTypeID
			}
		case FieldStatus:
			if !optional(req.Status, models.RoomStatuses) {
				return ErrInvalidRoomStatus
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateUpdateRoom(req models.UpdateRoomRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldRoomNumber, FieldFloor, FieldRoomTypeID, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldRoomNumber:
			if req.RoomNumber != nil && blank(*req.RoomNumber) {
				return ErrEmptyRoomNumber
			}
		case FieldFloor:
			if req.Floor != nil && *req.Floor < 0 {
				return ErrInvalidFloor
			}
		case FieldRoomTypeID:
			if req.RoomTypeID != nil && *req.RoomTypeID <= 0 {
				return ErrInvalidRoomTypeID
			}
		case FieldStatus:
			if req.Status != nil && !slices.Contains(models.RoomStatuses, *req.Status) {
				return ErrInvalidRoomStatus
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateRoomFilter(filter models.RoomFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldFloor}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !optional(filter.Status, models.RoomStatuses) {
				return ErrInvalidRoomStatus
			}
		case FieldFloor:
			if filter.Floor < 0 {
				return ErrInvalidFloor
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateAvailability(req models.AvailabilityRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDates, FieldRoomTypeID, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldDates:
			if req.StartDate.IsZero() || req.EndDate.IsZero() {
				return ErrEmptyDate
			}
			if !req.EndDate.After(req.StartDate) {
				return ErrInvalidDateRange
			}
		case FieldRoomTypeID:
			if req.RoomTypeID < 0 {
				return ErrInvalidRoomTypeID
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCreateGuest(req models.CreateGuestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldLoyaltyTier, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blank(req.Name) {
				return ErrEmptyGuestName
			}
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldLoyaltyTier:
			if !optional(req.LoyaltyTier, models.LoyaltyTiers) {
				return ErrInvalidLoyaltyTier
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateUpdateGuest(req models.UpdateGuestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldName, FieldEmail, FieldLoyaltyTier, FieldLoyaltyPoints}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if req.Name != nil && blank(*req.Name) {
				return ErrEmptyGuestName
			}
		case FieldEmail:
			if req.Email != nil && !validEmail(*req.Email) {
				return ErrInvalidEmail
			}
		case FieldLoyaltyTier:
			if req.LoyaltyTier != nil && !slices.Contains(models.LoyaltyTiers, *req.LoyaltyTier) {
				return ErrInvalidLoyaltyTier
			}
		case FieldLoyaltyPoints:
			if req.LoyaltyPoints != nil && *req.LoyaltyPoints < 0 {
				return ErrInvalidLoyalty
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateGuestFilter(filter models.GuestFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldLoyaltyTier}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if filter.Email != "" && !validEmail(filter.Email) {
				return ErrInvalidEmail
			}
		case FieldLoyaltyTier:
			if !optional(filter.LoyaltyTier, models.LoyaltyTiers) {
				return ErrInvalidLoyaltyTier
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCreateBooking(req models.CreateBookingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGuestID, FieldRoomID, FieldDates, FieldRate, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldGuestID:
			if req.GuestID <= 0 {
				return ErrInvalidGuestID
			}
		case FieldRoomID:
			if req.RoomID <= 0 {
				return ErrInvalidRoomID
			}
		case FieldDates:
			if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
				return ErrEmptyDate
			}
			if !req.CheckOut.After(req.CheckIn) {
				return ErrInvalidDateRange
			}
		case FieldRate:
			if req.RateApplied < 0 {
				return ErrInvalidRate
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateBookingFilter(filter models.BookingFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDates}
	}

	for _, f := range fields {
		switch f {
		case FieldDates:
			if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() && filter.EndDate.Before(filter.StartDate) {
				return ErrInvalidDateRange
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCheckOut(req models.CheckOutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPaymentMethod}
	}

	for _, f := range fields {
		switch f {
		case FieldPaymentMethod:
			if blank(req.PaymentMethod) {
				return ErrEmptyPaymentMethod
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCreateMaintenance(req models.CreateMaintenanceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomID, FieldDescription, FieldPriority, FieldAssigneeID, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomID:
			if req.RoomID <= 0 {
				return ErrInvalidRoomID
			}
		case FieldDescription:
			if blank(req.Description) {
				return ErrEmptyDescription
			}
		case FieldPriority:
			if !optional(req.Priority, models.MaintenancePriorities) {
				return ErrInvalidPriority
			}
		case FieldAssigneeID:
			if req.AssigneeID < 0 {
				return ErrInvalidAssigneeID
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateUpdateMaintenance(req models.UpdateMaintenanceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldDescription, FieldStatus, FieldPriority, FieldAssigneeID}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldDescription:
			if req.Description != nil && blank(*req.Description) {
				return ErrEmptyDescription
			}
		case FieldStatus:
			if req.Status != nil && !slices.Contains(models.MaintenanceStatuses, *req.Status) {
				return ErrInvalidStatus
			}
		case FieldPriority:
			if req.Priority != nil && !slices.Contains(models.MaintenancePriorities, *req.Priority) {
				return ErrInvalidPriority
			}
		case FieldAssigneeID:
			if req.AssigneeID != nil && *req.AssigneeID <= 0 {
				return ErrInvalidAssigneeID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateMaintenanceFilter(filter models.MaintenanceFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldPriority, FieldRoomID}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !optional(filter.Status, models.MaintenanceStatuses) {
				return ErrInvalidStatus
			}
		case FieldPriority:
			if !optional(filter.Priority, models.MaintenancePriorities) {
				return ErrInvalidPriority
			}
		case FieldRoomID:
			if filter.RoomID < 0 {
				return ErrInvalidRoomID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}

func (v *HotelValidator) validateCreateHousekeeping(req models.CreateHousekeepingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomID, FieldStatus, FieldAssigneeID, FieldPropertyID}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomID:
			if req.RoomID <= 0 {
				return ErrInvalidRoomID
			}
		case FieldStatus:
			if !optional(req.Status, models.HousekeepingStatuses) {
				return ErrInvalidStatus
			}
		case FieldAssigneeID:
			if req.AssigneeID < 0 {
				return ErrInvalidAssigneeID
			}
		case FieldPropertyID:
			if req.PropertyID <= 0 {
				return ErrInvalidPropertyID
			}
		default:
			return unknownField(f)
		}
	}
	return nil
}
