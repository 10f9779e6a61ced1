// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by session repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned by LoadSession when no session has
	// been saved, or after it was deleted.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrPartialSession is returned by LoadSession when only one of the two
	// tokens is present in storage. Such a record is never restored.
	ErrPartialSession = errors.New("local session is incomplete")

	// ErrInvalidSession is returned by SaveSession when either token is
	// empty.
	ErrInvalidSession = errors.New("local session must carry both tokens")

	// ErrSealingSession is returned when a token cannot be sealed before
	// writing or opened after reading.
	ErrSealingSession = errors.New("failed to seal or open local session")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite repository when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning session rows fails.
	ErrScanningRows = errors.New("failed to scan session rows")
)
