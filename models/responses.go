// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by both POST /users/login and
// POST /users/refresh-token.
type AuthResponse struct {
	// User is the authenticated account.
	User User `json:"user"`

	// AccessToken is the new short-lived bearer token.
	AccessToken string `json:"access_token"`

	// RefreshToken is the new refresh token. The previous one must not be
	// reused after a successful refresh.
	RefreshToken string `json:"refresh_token"`
}

// Credentials returns the token pair carried by the response.
func (r AuthResponse) Credentials() CredentialPair {
	return CredentialPair{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
}

// ErrorResponse is the body of a rejected API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
