// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
)

// invalid wraps a validator rejection so that callers see the same error
// kind as a request the API client itself refused.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return adapter.NewValidationError(err)
}

func validate(ctx context.Context, v validators.Validator, obj any) error {
	return invalid(v.Validate(ctx, obj))
}

func validateID(id int64) error {
	return invalid(validators.ValidateID(id))
}

// call sends one request and decodes the response body into T.
func call[T any](ctx context.Context, api adapter.APIClient, method, path string, body any, query map[string]string) (T, error) {
	var out T

	raw, err := api.Request(ctx, method, path, body, query)
	if err != nil {
		return out, mapAdapterError(err)
	}
	if len(raw) == 0 {
		return out, fmt.Errorf("%w: empty body for %s %s", ErrInvalidResponse, method, path)
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s %s: %w", ErrInvalidResponse, method, path, err)
	}

	return out, nil
}

// exec sends one request whose response body is ignored.
func exec(ctx context.Context, api adapter.APIClient, method, path string) error {
	_, err := api.Request(ctx, method, path, nil, nil)
	return mapAdapterError(err)
}

func resourcePath(collection string, id int64, action ...string) string {
	p := fmt.Sprintf("/%s/%d", collection, id)
	for _, a := range action {
		p += "/" + a
	}
	return p
}
