// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/store"
	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

// Manager holds the installed credential pair and user.
//
// Reads take a shared lock, so concurrent requests can pick up the current
// access token while a refresh installs the next pair.
//
// Writers also hold persistMu across the memory update and the durable write,
// so storage always ends up holding what memory holds.
type Manager struct {
	persistMu sync.Mutex

	mu   sync.RWMutex
	pair models.CredentialPair
	user *models.User

	repo   store.SessionRepository
	logger *logger.Logger
	now    func() time.Time
}

var _ Reader = (*Manager)(nil)

// NewManager returns an empty manager persisting through repo. A nil repo
// keeps the session in memory only.
func NewManager(repo store.SessionRepository, logger *logger.Logger) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Install replaces the credential pair. A nil user keeps the user already
// installed. The pair is installed in memory even when persisting it fails;
// that failure is only logged.
func (m *Manager) Install(ctx context.Context, pair models.CredentialPair, user *models.User) error {
	if !pair.IsComplete() {
		return ErrPartialCredentials
	}

	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	m.persist(ctx, m.swap(pair, user))
	return nil
}

// InstallIfCurrent installs pair only while the installed pair still holds
// refreshToken. It reports false when the session was cleared or replaced
// in the meantime; nothing is written then.
func (m *Manager) InstallIfCurrent(ctx context.Context, refreshToken string, pair models.CredentialPair, user *models.User) (bool, error) {
	if !pair.IsComplete() {
		return false, ErrPartialCredentials
	}

	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	if current, ok := m.Credentials(); !ok || current.RefreshToken != refreshToken {
		return false, nil
	}

	m.persist(ctx, m.swap(pair, user))
	return true, nil
}

func (m *Manager) swap(pair models.CredentialPair, user *models.User) store.LocalSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pair = pair
	if user != nil {
		u := *user
		m.user = &u
	}
	return store.LocalSession{
		Credentials: m.pair,
		User:        m.user,
		UpdatedAt:   m.now().UTC(),
	}
}

func (m *Manager) persist(ctx context.Context, snapshot store.LocalSession) {
	if m.repo == nil {
		return
	}
	if err := m.repo.SaveSession(ctx, snapshot); err != nil {
		m.logger.Err(err).Str("func", "Manager.persist").Msg("failed to persist session, keeping it in memory only")
	}
}

// Clear removes the credential pair and user. Memory is always cleared; the
// error reports a failure to remove the persisted copy.
func (m *Manager) Clear(ctx context.Context) error {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	m.mu.Lock()
	m.pair = models.CredentialPair{}
	m.user = nil
	m.mu.Unlock()

	if m.repo == nil {
		return nil
	}
	if err := m.repo.DeleteSession(ctx); err != nil {
		m.logger.Err(err).Str("func", "Manager.Clear").Msg("failed to delete persisted session")
		return fmt.Errorf("failed to delete persisted session: %w", err)
	}

	return nil
}

// Restore loads the persisted session into memory. It returns ErrNoSession
// when nothing was persisted. A persisted session missing one of the tokens
// is deleted and reported as ErrPartialCredentials.
func (m *Manager) Restore(ctx context.Context) error {
	if m.repo == nil {
		return ErrNoSession
	}

	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	local, err := m.repo.LoadSession(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		return ErrNoSession
	case errors.Is(err, store.ErrPartialSession):
		m.logger.Warn().Str("func", "Manager.Restore").Msg("discarding incomplete persisted session")
		if delErr := m.repo.DeleteSession(ctx); delErr != nil {
			m.logger.Err(delErr).Str("func", "Manager.Restore").Msg("failed to delete incomplete session")
		}
		return ErrPartialCredentials
	case err != nil:
		return fmt.Errorf("failed to load persisted session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = local.Credentials
	m.user = local.User

	return nil
}

// Credentials returns a copy of the installed pair.
func (m *Manager) Credentials() (models.CredentialPair, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair, !m.pair.IsZero()
}

func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

func (m *Manager) Authenticated() bool {
	_, ok := m.Credentials()
	return ok
}

func (m *Manager) Current() (models.Session, error) {
	pair, ok := m.Credentials()
	if !ok {
		return models.Session{}, ErrNoSession
	}

	s, err := m.decode(pair.AccessToken)
	if err != nil {
		return models.Session{}, err
	}
	if !s.Valid(m.now()) {
		return s, ErrSessionExpired
	}
	return s, nil
}

// ExpiresWithin implements [Reader]. A token whose claims cannot be decoded
// is treated as about to expire.
func (m *Manager) ExpiresWithin(d time.Duration) bool {
	pair, ok := m.Credentials()
	if !ok {
		return false
	}

	s, err := m.decode(pair.AccessToken)
	if err != nil {
		return true
	}
	return s.ExpiresWithin(m.now(), d)
}

func (m *Manager) decode(accessToken string) (models.Session, error) {
	claims, err := utils.ParseUnverifiedClaims(accessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	s := models.Session{
		Username:   claims.Username,
		Role:       claims.Role,
		PropertyID: claims.PropertyID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	if id, err := claims.GetUserID(); err == nil {
		s.UserID = id
	}

	if user, ok := m.User(); ok {
		if s.UserID == 0 {
			s.UserID = user.ID
		}
		if s.Username == "" {
			s.Username = user.Username
		}
		if s.Role == "" {
			s.Role = user.Role
		}
		if s.PropertyID == 0 {
			s.PropertyID = user.PropertyID
		}
	}

	return s, nil
}
