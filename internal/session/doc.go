// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the credential pair and user of the running client.
//
// A single [Manager] is created at startup and shared by reference. Only the
// API client and the application bootstrap call its writer methods
// (Install, Clear, Restore); everything else receives the read-only
// [Reader] view. Every write goes to memory first and is then mirrored to a
// [store.SessionRepository] so a restarted client can pick the session up
// again.
package session
