// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HousekeepingStatus is the state of a cleaning task.
type HousekeepingStatus string

const (
	HousekeepingPending    HousekeepingStatus = "Pending"
	HousekeepingInProgress HousekeepingStatus = "In Progress"
	HousekeepingCompleted  HousekeepingStatus = "Completed"
)

// HousekeepingStatuses lists every status accepted by the API.
var HousekeepingStatuses = []HousekeepingStatus{HousekeepingPending, HousekeepingInProgress, HousekeepingCompleted}

// Housekeeping is a cleaning task assigned for a room.
type Housekeeping struct {
	ID         int64              `json:"id"`
	RoomID     int64              `json:"room_id"`
	Status     HousekeepingStatus `json:"status"`
	AssigneeID int64              `json:"assignee_id,omitempty"`
	PropertyID int64              `json:"property_id"`
}

// CreateHousekeepingRequest is the payload of POST /housekeepings.
type CreateHousekeepingRequest struct {
	RoomID     int64              `json:"room_id"`
	Status     HousekeepingStatus `json:"status,omitempty"`
	AssigneeID int64              `json:"assignee_id,omitempty"`
	PropertyID int64              `json:"property_id"`
}
