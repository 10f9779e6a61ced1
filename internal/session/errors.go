// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	ErrNoSession          = errors.New("no session installed")
	ErrSessionExpired     = errors.New("session expired")
	ErrPartialCredentials = errors.New("credential pair must carry both tokens")
	ErrMalformedToken     = errors.New("access token claims cannot be decoded")
)
