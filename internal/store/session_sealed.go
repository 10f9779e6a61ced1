// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hotel-desk/internal/crypto"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
)

// sealedSessionRepository seals both tokens before they reach the wrapped
// repository. Each token is sealed under its storage key so the two cannot
// be swapped at rest.
type sealedSessionRepository struct {
	next   SessionRepository
	sealer crypto.Sealer
}

func NewSealedSessionRepository(next SessionRepository, sealer crypto.Sealer) SessionRepository {
	return &sealedSessionRepository{
		next:   next,
		sealer: sealer,
	}
}

func (s *sealedSessionRepository) SaveSession(ctx context.Context, session LocalSession) error {
	if !session.Credentials.IsComplete() {
		return ErrInvalidSession
	}

	access, err := s.sealer.Seal(KeyAccessToken, session.Credentials.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSealingSession, err)
	}
	refresh, err := s.sealer.Seal(KeyRefreshToken, session.Credentials.RefreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSealingSession, err)
	}

	session.Credentials.AccessToken = access
	session.Credentials.RefreshToken = refresh

	return s.next.SaveSession(ctx, session)
}

func (s *sealedSessionRepository) LoadSession(ctx context.Context) (LocalSession, error) {
	log := logger.FromContext(ctx)

	session, err := s.next.LoadSession(ctx)
	if err != nil {
		return LocalSession{}, err
	}

	access, err := s.sealer.Open(KeyAccessToken, session.Credentials.AccessToken)
	if err != nil {
		log.Err(err).Str("func", "sealedSessionRepository.LoadSession").Msg("error opening access token")
		return LocalSession{}, fmt.Errorf("%w: %w", ErrSealingSession, err)
	}
	refresh, err := s.sealer.Open(KeyRefreshToken, session.Credentials.RefreshToken)
	if err != nil {
		log.Err(err).Str("func", "sealedSessionRepository.LoadSession").Msg("error opening refresh token")
		return LocalSession{}, fmt.Errorf("%w: %w", ErrSealingSession, err)
	}

	session.Credentials.AccessToken = access
	session.Credentials.RefreshToken = refresh

	return session, nil
}

func (s *sealedSessionRepository) DeleteSession(ctx context.Context) error {
	return s.next.DeleteSession(ctx)
}
