// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hotel-desk/models"
)

// mapHTTPError returns nil for 2xx responses and an HTTPStatus [APIError]
// otherwise. The message of a JSON error body becomes the error's Body.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var rejected models.ErrorResponse
	if json.Unmarshal(resp.Body(), &rejected) == nil && rejected.Error != "" {
		body = rejected.Error
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &APIError{
		Kind:       KindHTTPStatus,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}

// mapRefreshError is mapHTTPError for the refresh endpoint: any 4xx
// rejection means the refresh token is no longer usable.
func mapRefreshError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	apiErr := err.(*APIError)
	if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
		apiErr.Kind = KindAuthExpired
	}
	return apiErr
}
