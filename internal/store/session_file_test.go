// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/models"
)

func TestFileSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "session.json")
	repo := NewFileSessionRepository(path, logger.Nop())

	_, err := repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	session := testLocalSession()
	require.NoError(t, repo.SaveSession(ctx, session))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Credentials, loaded.Credentials)
	require.NotNil(t, loaded.User)
	assert.Equal(t, *session.User, *loaded.User)
	assert.True(t, session.UpdatedAt.Equal(loaded.UpdatedAt))

	require.NoError(t, repo.DeleteSession(ctx))
	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	// deleting twice is fine
	assert.NoError(t, repo.DeleteSession(ctx))
}

func TestFileSessionRepository_NoTempFilesLeft(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewFileSessionRepository(filepath.Join(dir, "session.json"), logger.Nop())

	require.NoError(t, repo.SaveSession(ctx, testLocalSession()))
	require.NoError(t, repo.SaveSession(ctx, testLocalSession()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session.json", entries[0].Name())
}

func TestFileSessionRepository_PartialRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"values":{"refresh_token":"refresh-1"}}`), 0o600))

	_, err := NewFileSessionRepository(path, logger.Nop()).LoadSession(context.Background())
	assert.ErrorIs(t, err, ErrPartialSession)
}

func TestFileSessionRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	_, err := NewFileSessionRepository(path, logger.Nop()).LoadSession(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding session file")
}

func TestFileSessionRepository_RejectsIncompletePair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileSessionRepository(path, logger.Nop())

	err := repo.SaveSession(context.Background(), LocalSession{
		Credentials: models.CredentialPair{AccessToken: "access-only"},
	})
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileSessionRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewFileSessionRepository(filepath.Join(t.TempDir(), "session.json"), logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.SaveSession(ctx, testLocalSession()))
		}()
	}
	wg.Wait()

	loaded, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-1", loaded.Credentials.AccessToken)
}
