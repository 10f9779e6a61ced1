// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest runs an in-process fake of the hotel REST API for tests.
//
// The fake issues real HS256 access tokens, rotates refresh tokens on every
// exchange and keeps rooms, guests, bookings and the other resources in
// memory. Controls such as [Server.RevokeAccessTokens], [Server.FailRefresh]
// and [Server.RejectPath] drive the client into its error paths, and
// [Server.Requests] records what the client actually sent.
package apitest
