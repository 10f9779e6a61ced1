// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client session between runs.
//
// The session is kept under three keys, access_token, refresh_token and
// user, and is always written and removed as a whole. Three backends are
// available, selected by DSN: SQLite (default), a JSON file ("*.json") and
// process memory (":memory:"). Tokens can be sealed at rest by wrapping any
// backend with [NewSealedSessionRepository].
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hotel-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// Storage keys of a persisted session.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// LocalSession is the durable form of a client session.
type LocalSession struct {
	// Credentials is the installed token pair. Both tokens are required.
	Credentials models.CredentialPair `json:"credentials"`

	// User is the authenticated account, nil when it is not known.
	User *models.User `json:"user,omitempty"`

	// UpdatedAt is when the session was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionRepository stores at most one session.
type SessionRepository interface {
	// SaveSession replaces the stored session atomically. It returns
	// ErrInvalidSession if either token is empty.
	SaveSession(ctx context.Context, session LocalSession) error

	// LoadSession returns the stored session, ErrLocalSessionNotFound when
	// there is none and ErrPartialSession when only one token is stored.
	LoadSession(ctx context.Context) (LocalSession, error)

	// DeleteSession removes the stored session. Deleting a missing session
	// is not an error.
	DeleteSession(ctx context.Context) error
}
