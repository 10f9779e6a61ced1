// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong username or password")
	ErrUnauthorized        = errors.New("request was not authorized")
	ErrNotFound            = errors.New("record not found")
	ErrAlreadyExists       = errors.New("record already exists or conflicts with another one")
	ErrForbidden           = errors.New("not allowed for this account")
	ErrServerFailure       = errors.New("hotel api failed")
	ErrInvalidResponse     = errors.New("unexpected response from hotel api")
)
