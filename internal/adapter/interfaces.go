// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the authenticated client of the hotel REST API.
//
// [Client] attaches the installed access token to every request and, when
// the server answers 401, exchanges the refresh token once and replays the
// request once. Requests run as an explicit pipeline:
//
//	attachAuth -> send -> retryIfAuthExpired
//
// Concurrent 401s share a single refresh call. All failures are returned as
// [*APIError] so callers can branch on [ErrAuthExpired], [ErrNetwork],
// [ErrHTTPStatus] and [ErrValidation] with [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-hotel-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient is the contract consumed by the data-access services.
type APIClient interface {
	// Request sends method to path, relative to the configured base URL, and
	// returns the raw JSON body of a 2xx response. body is encoded as JSON
	// when not nil. A 401 is recovered at most once by refreshing the
	// session.
	Request(ctx context.Context, method, path string, body any, query map[string]string) (json.RawMessage, error)

	// SetCredentials installs pair, or clears the session when pair is nil.
	// The change applies to the very next request.
	SetCredentials(ctx context.Context, pair *models.CredentialPair) error

	// Credentials returns the installed pair.
	Credentials() (models.CredentialPair, bool)

	// Login authenticates without a bearer token and installs the returned
	// credentials and user.
	Login(ctx context.Context, username, password string) (models.AuthResponse, error)

	// Refresh exchanges refreshToken for a new pair without installing it.
	// A 4xx rejection is reported as KindAuthExpired.
	Refresh(ctx context.Context, refreshToken string) (models.CredentialPair, error)

	// RefreshSession refreshes and installs the installed pair. Failure
	// clears the session and is reported as KindAuthExpired.
	RefreshSession(ctx context.Context) (models.CredentialPair, error)

	// Logout clears the session in memory and in durable storage.
	Logout(ctx context.Context) error
}

// SessionStore is the writable session the client owns.
type SessionStore interface {
	Credentials() (models.CredentialPair, bool)
	Install(ctx context.Context, pair models.CredentialPair, user *models.User) error

	// InstallIfCurrent installs pair only while the installed pair still
	// holds refreshToken, and reports whether it did.
	InstallIfCurrent(ctx context.Context, refreshToken string, pair models.CredentialPair, user *models.User) (bool, error)

	Clear(ctx context.Context) error
}
