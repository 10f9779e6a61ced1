// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the staff role assigned to a user account.
type Role string

const (
	RoleReceptionist Role = "Receptionist"
	RoleManager      Role = "Manager"
	RoleHousekeeping Role = "Housekeeping"
)

// Roles lists every role accepted by the API.
var Roles = []Role{RoleReceptionist, RoleManager, RoleHousekeeping}

// User represents a staff account of a hotel property.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Email is the contact address of the user. Not every endpoint returns it.
	Email string `json:"email,omitempty"`

	// Role defines what the user is allowed to do on the property.
	Role Role `json:"role"`

	// PropertyID scopes the user to a single hotel property.
	PropertyID int64 `json:"property_id"`
}

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	PropertyID int64  `json:"property_id"`
}
