// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNoCommand is returned when no subcommand was given.
	ErrNoCommand = errors.New("no command given")

	// ErrUnknownCommand is returned for a subcommand the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrLoginRequired is returned when there is no usable session and the
	// user has to run the login command again.
	ErrLoginRequired = errors.New("login required, run `hotel-desk login`")
)
