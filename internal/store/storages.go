// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/crypto"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
)

// MemoryDSN selects the in-process backend.
const MemoryDSN = ":memory:"

// ClientStorages groups the durable stores used by the client.
type ClientStorages struct {
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the session store selected by cfg.DB.DSN:
// ":memory:" keeps the session in process memory, a path ending in ".json"
// uses the JSON file backend and any other value is opened as a SQLite
// database and migrated. Tokens are sealed with sealer before they are
// stored.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)

	var (
		repo SessionRepository
		db   *DB
	)
	switch {
	case dsn == MemoryDSN:
		repo = NewMemorySessionRepository()
	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		repo = NewFileSessionRepository(dsn, logger)
	default:
		conn, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			logger.Err(err).Str("func", "NewClientStorages").Msg("failed to connect to local database")
			return nil, fmt.Errorf("failed to connect to local database: %w", err)
		}
		if err = conn.Migrate(ctx); err != nil {
			logger.Err(err).Str("func", "NewClientStorages").Msg("failed to migrate local database")
			return nil, multierr.Append(fmt.Errorf("failed to migrate local database: %w", err), conn.Close())
		}
		db = conn
		repo = NewSQLiteSessionRepository(conn, logger)
	}

	if sealer != nil {
		repo = NewSealedSessionRepository(repo, sealer)
	}

	logger.Debug().Str("func", "NewClientStorages").Str("dsn", dsn).Msg("session storage ready")

	return &ClientStorages{
		SessionRepository: repo,
		db:                db,
	}, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
