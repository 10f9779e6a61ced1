// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"time"

	"github.com/MKhiriev/go-hotel-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_reader_mock.go -package=mock

// Reader is the read-only view of the session handed to consumers.
type Reader interface {
	// User returns the authenticated user, if known.
	User() (models.User, bool)

	// Authenticated reports whether a credential pair is installed. It does
	// not check expiry.
	Authenticated() bool

	// Current decodes the installed access token. It returns ErrNoSession
	// when nothing is installed and ErrSessionExpired once the token has
	// expired.
	Current() (models.Session, error)

	// ExpiresWithin reports whether the installed access token expires
	// within d. It is false when nothing is installed.
	ExpiresWithin(d time.Duration) bool
}
