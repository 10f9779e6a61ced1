// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "http_status", KindHTTPStatus.String())
	assert.Equal(t, "auth_expired", KindAuthExpired.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "kind(42)", ErrorKind(42).String())
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name    string
		err     *APIError
		matches []error
		not     []error
	}{
		{
			name:    "status with known sentinel",
			err:     &APIError{Kind: KindHTTPStatus, StatusCode: http.StatusNotFound},
			matches: []error{ErrHTTPStatus, ErrNotFound},
			not:     []error{ErrAuthExpired, ErrConflict},
		},
		{
			name:    "unmapped status",
			err:     &APIError{Kind: KindHTTPStatus, StatusCode: http.StatusTeapot},
			matches: []error{ErrHTTPStatus},
			not:     []error{ErrBadRequest, ErrNotFound},
		},
		{
			name:    "auth expired keeps rejected status",
			err:     &APIError{Kind: KindAuthExpired, StatusCode: http.StatusUnauthorized, Err: ErrNoRefreshToken},
			matches: []error{ErrAuthExpired, ErrUnauthorized, ErrNoRefreshToken},
			not:     []error{ErrHTTPStatus},
		},
		{
			name:    "network",
			err:     networkError(errors.New("connection refused")),
			matches: []error{ErrNetwork},
			not:     []error{ErrHTTPStatus, ErrValidation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("call: %w", tt.err)
			for _, target := range tt.matches {
				assert.ErrorIs(t, wrapped, target)
			}
			for _, target := range tt.not {
				assert.NotErrorIs(t, wrapped, target)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Kind: KindHTTPStatus, StatusCode: http.StatusConflict, Err: ErrMalformedResponse, Body: "room taken"}
	assert.Equal(t, "http_status 409: malformed response body: room taken", err.Error())

	assert.Equal(t, "validation: empty path", validationError("empty path").Error())
}

func TestStatusCode(t *testing.T) {
	code, ok := StatusCode(fmt.Errorf("wrapped: %w", &APIError{Kind: KindHTTPStatus, StatusCode: http.StatusBadGateway}))
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, code)

	_, ok = StatusCode(networkError(errors.New("timeout")))
	assert.False(t, ok)

	_, ok = StatusCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestAuthExpiredError_AdoptsInnerResponse(t *testing.T) {
	inner := &APIError{Kind: KindHTTPStatus, StatusCode: http.StatusForbidden, Body: "revoked"}

	err := authExpiredError(inner)

	assert.Equal(t, KindAuthExpired, err.Kind)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, "revoked", err.Body)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrHTTPStatus)
}
