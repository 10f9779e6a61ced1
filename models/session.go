// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a read-only view of the identity carried by the installed access
// token. It is derived from [Claims] and never written back.
type Session struct {
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	Role       Role      `json:"role,omitempty"`
	PropertyID int64     `json:"property_id,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Valid reports whether the backing access token has not yet expired at now.
// A session without an expiry claim is never considered valid.
func (s Session) Valid(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(s.ExpiresAt)
}

// ExpiresWithin reports whether the session expires within d of now,
// including sessions that have already expired.
func (s Session) ExpiresWithin(now time.Time, d time.Duration) bool {
	return !s.Valid(now.Add(d))
}
