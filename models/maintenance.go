// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaintenanceStatus is the workflow state of a maintenance ticket.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "Open"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceResolved   MaintenanceStatus = "Resolved"
)

// MaintenanceStatuses lists every status accepted by the API.
var MaintenanceStatuses = []MaintenanceStatus{MaintenanceOpen, MaintenanceInProgress, MaintenanceResolved}

// MaintenancePriority is the urgency of a maintenance ticket.
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "Low"
	PriorityMedium MaintenancePriority = "Medium"
	PriorityHigh   MaintenancePriority = "High"
)

// MaintenancePriorities lists every priority accepted by the API.
var MaintenancePriorities = []MaintenancePriority{PriorityLow, PriorityMedium, PriorityHigh}

// Maintenance is a repair ticket raised for a room.
type Maintenance struct {
	ID          int64               `json:"id"`
	RoomID      int64               `json:"room_id"`
	Description string              `json:"description"`
	Status      MaintenanceStatus   `json:"status"`
	Priority    MaintenancePriority `json:"priority"`
	AssigneeID  int64               `json:"assignee_id,omitempty"`
	PropertyID  int64               `json:"property_id"`
	History     map[string]any      `json:"history,omitempty"`
}

// CreateMaintenanceRequest is the payload of POST /maintenance.
type CreateMaintenanceRequest struct {
	RoomID      int64               `json:"room_id"`
	Description string              `json:"description"`
	Priority    MaintenancePriority `json:"priority"`
	AssigneeID  int64               `json:"assignee_id,omitempty"`
	PropertyID  int64               `json:"property_id"`
}

// UpdateMaintenanceRequest is the payload of PUT /maintenance/{id}.
// Only non-nil fields are sent.
type UpdateMaintenanceRequest struct {
	Description *string              `json:"description,omitempty"`
	Status      *MaintenanceStatus   `json:"status,omitempty"`
	Priority    *MaintenancePriority `json:"priority,omitempty"`
	AssigneeID  *int64               `json:"assignee_id,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (r UpdateMaintenanceRequest) IsEmpty() bool {
	return r.Description == nil && r.Status == nil && r.Priority == nil && r.AssigneeID == nil
}
