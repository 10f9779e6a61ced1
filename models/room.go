// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RoomStatus is the occupancy/cleanliness state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomDirty       RoomStatus = "Dirty"
)

// RoomStatuses lists every status accepted by the API.
var RoomStatuses = []RoomStatus{RoomAvailable, RoomOccupied, RoomMaintenance, RoomDirty}

// Room is a bookable unit of a property.
type Room struct {
	ID          int64          `json:"id"`
	RoomNumber  string         `json:"room_number"`
	Floor       int            `json:"floor"`
	RoomTypeID  int64          `json:"room_type_id"`
	Status      RoomStatus     `json:"status"`
	Features    map[string]any `json:"features,omitempty"`
	PropertyID  int64          `json:"property_id"`
	LastCleaned string         `json:"last_cleaned,omitempty"`
}

// CreateRoomRequest is the payload of POST /rooms.
type CreateRoomRequest struct {
	RoomNumber string         `json:"room_number"`
	Floor      int            `json:"floor"`
	RoomTypeID int64          `json:"room_type_id"`
	Status     RoomStatus     `json:"status"`
	Features   map[string]any `json:"features,omitempty"`
	PropertyID int64          `json:"property_id"`
}

// UpdateRoomRequest is the payload of PUT /rooms/{id}.
// Only non-nil fields are sent.
type UpdateRoomRequest struct {
	RoomNumber *string         `json:"room_number,omitempty"`
	Floor      *int            `json:"floor,omitempty"`
	RoomTypeID *int64          `json:"room_type_id,omitempty"`
	Status     *RoomStatus     `json:"status,omitempty"`
	Features   *map[string]any `json:"features,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (r UpdateRoomRequest) IsEmpty() bool {
	return r.RoomNumber == nil && r.Floor == nil && r.RoomTypeID == nil && r.Status == nil && r.Features == nil
}
