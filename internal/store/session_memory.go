// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"
)

// memorySessionRepository keeps the session for the lifetime of the process
// only.
type memorySessionRepository struct {
	mu        sync.RWMutex
	values    map[string]string
	updatedAt time.Time
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (m *memorySessionRepository) SaveSession(_ context.Context, session LocalSession) error {
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

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = values
	m.updatedAt = session.UpdatedAt

	return nil
}

func (m *memorySessionRepository) LoadSession(_ context.Context) (LocalSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sessionFromValues(m.values, m.updatedAt)
}

func (m *memorySessionRepository) DeleteSession(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = nil
	m.updatedAt = time.Time{}

	return nil
}
