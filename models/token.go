// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialPair is the access/refresh token tuple currently in effect for a
// session. Both tokens are always replaced together.
type CredentialPair struct {
	// AccessToken is the short-lived bearer credential attached to API calls.
	AccessToken string `json:"access_token"`

	// RefreshToken is exchanged for a new pair once AccessToken expires.
	RefreshToken string `json:"refresh_token"`
}

// IsZero reports whether neither token is set.
func (p CredentialPair) IsZero() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

// IsComplete reports whether both tokens are set. Only complete pairs can be
// installed into a session.
func (p CredentialPair) IsComplete() bool {
	return strings.TrimSpace(p.AccessToken) != "" && strings.TrimSpace(p.RefreshToken) != ""
}

// Claims is the claim set carried by access tokens issued by the hotel API.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss) and adds the application specific role and property scoping.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the login of the authenticated user, when the server
	// includes it.
	Username string `json:"username,omitempty"`

	// Role is the staff role of the user (see [Role]).
	Role Role `json:"role,omitempty"`

	// PropertyID scopes the user to a single hotel property.
	PropertyID int64 `json:"property_id,omitempty"`
}

// GetUserID extracts the user identifier from the "sub" claim and parses it
// as a base-10 int64.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userIDString == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}
