// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
)

func rawJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func statusError(code int) error {
	return &adapter.APIError{Kind: adapter.KindHTTPStatus, StatusCode: code, Body: "server says no"}
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	var apiErr *adapter.APIError
	require.True(t, errors.As(err, &apiErr), "expected *adapter.APIError, got %v", err)
	require.Equal(t, adapter.KindValidation, apiErr.Kind)
}
