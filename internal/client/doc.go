// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the hotel desk command-line application runtime.
//
// It wires configuration, durable session storage, the authenticated API
// client, the data-access services and the background session refresher
// into a single process lifecycle, and runs one subcommand per invocation.
package client
