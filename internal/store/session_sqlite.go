// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/models"
)

const sessionTable = "client_session"

// Writes racing another hotel-desk process on the same file are retried.
const (
	busyRetries     = 4
	busyBackoffBase = 20 * time.Millisecond
)

var sessionKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUser}

type sqliteSessionRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLiteSessionRepository stores the session as key/value rows of the
// client_session table. The schema must already be migrated.
func NewSQLiteSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sqliteSessionRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
	}
}

func (s *sqliteSessionRepository) SaveSession(ctx context.Context, session LocalSession) error {
	log := logger.FromContext(ctx)

	if !session.Credentials.IsComplete() {
		return ErrInvalidSession
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now().UTC()
	}

	values, err := valuesFromSession(session)
	if err != nil {
		return err
	}

	insert := s.builder.Insert(sessionTable).Columns("key", "value", "updated_at")
	for _, key := range sessionKeys {
		if value, ok := values[key]; ok {
			insert = insert.Values(key, value, session.UpdatedAt)
		}
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.SaveSession").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := s.builder.Delete(sessionTable).ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.SaveSession").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return withBusyRetry(ctx, func(ctx context.Context) error {
		tx, err := s.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "sqliteSessionRepository.SaveSession").Msg("error beginning transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			log.Err(err).Str("func", "sqliteSessionRepository.SaveSession").Msg("error removing previous session")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "sqliteSessionRepository.SaveSession").Msg("error inserting session")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			log.Err(err).Str("func", "sqliteSessionRepository.SaveSession").Msg("error committing transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}

func (s *sqliteSessionRepository) LoadSession(ctx context.Context) (LocalSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.Select("key", "value", "updated_at").
		From(sessionTable).
		Where(sq.Eq{"key": sessionKeys}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.LoadSession").Msg("error building select query")
		return LocalSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.LoadSession").Msg("error querying session")
		return LocalSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, len(sessionKeys))
	var updatedAt time.Time
	for rows.Next() {
		var (
			key, value string
			rowTime    time.Time
		)
		if err = rows.Scan(&key, &value, &rowTime); err != nil {
			log.Err(err).Str("func", "sqliteSessionRepository.LoadSession").Msg("error scanning session row")
			return LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
		if rowTime.After(updatedAt) {
			updatedAt = rowTime
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.LoadSession").Msg("error iterating session rows")
		return LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessionFromValues(values, updatedAt)
}

func (s *sqliteSessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.Delete(sessionTable).ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.DeleteSession").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return withBusyRetry(ctx, func(ctx context.Context) error {
		if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "sqliteSessionRepository.DeleteSession").Msg("error deleting session")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// withBusyRetry runs fn again while another process holds the database
// lock. Any other error is returned at once.
func withBusyRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewExponential(busyBackoffBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if isBusy(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}

// sessionFromValues assembles a session from its stored keys. It is shared
// by every backend so that partial records are treated the same way.
func sessionFromValues(values map[string]string, updatedAt time.Time) (LocalSession, error) {
	access, refresh := values[KeyAccessToken], values[KeyRefreshToken]
	switch {
	case access == "" && refresh == "":
		return LocalSession{}, ErrLocalSessionNotFound
	case access == "" || refresh == "":
		return LocalSession{}, ErrPartialSession
	}

	session := LocalSession{
		Credentials: models.CredentialPair{AccessToken: access, RefreshToken: refresh},
		UpdatedAt:   updatedAt,
	}

	if raw := values[KeyUser]; raw != "" {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return LocalSession{}, fmt.Errorf("error decoding session user: %w", err)
		}
		session.User = &user
	}

	return session, nil
}

// valuesFromSession is the inverse of sessionFromValues.
func valuesFromSession(session LocalSession) (map[string]string, error) {
	values := map[string]string{
		KeyAccessToken:  session.Credentials.AccessToken,
		KeyRefreshToken: session.Credentials.RefreshToken,
	}
	if session.User != nil {
		userJSON, err := json.Marshal(session.User)
		if err != nil {
			return nil, fmt.Errorf("error encoding session user: %w", err)
		}
		values[KeyUser] = string(userJSON)
	}
	return values, nil
}

