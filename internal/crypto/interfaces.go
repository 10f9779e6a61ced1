// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals session tokens before they are written to local
// storage.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects small secrets at rest.
//
// label binds a sealed value to the slot it is stored in (for example
// "access_token"): a value sealed under one label cannot be opened under
// another.
type Sealer interface {
	// Seal encrypts plaintext and returns a printable blob.
	Seal(label, plaintext string) (string, error)

	// Open reverses Seal. It returns ErrNotSealed for values that were never
	// sealed and ErrOpenFailed when authentication fails (wrong key,
	// wrong label or tampered data).
	Open(label, sealed string) (string, error)
}
