// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationType is the delivery channel of a notification.
type NotificationType string

const (
	NotificationEmail NotificationType = "Email"
	NotificationSMS   NotificationType = "SMS"
	NotificationPush  NotificationType = "Push"
)

// NotificationStatus is the delivery state of a notification.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "Pending"
	NotificationSent    NotificationStatus = "Sent"
	NotificationFailed  NotificationStatus = "Failed"
)

// Notification is a message sent by the property about an entity
// (booking, maintenance ticket, ...).
type Notification struct {
	ID              int64              `json:"id"`
	Type            NotificationType   `json:"type"`
	Recipient       string             `json:"recipient"`
	Message         string             `json:"message"`
	Status          NotificationStatus `json:"status"`
	RelatedEntityID int64              `json:"related_entity_id"`
	EntityType      string             `json:"entity_type"`
	PropertyID      int64              `json:"property_id"`
}
