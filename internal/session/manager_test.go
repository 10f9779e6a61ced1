// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/mock"
	"github.com/MKhiriev/go-hotel-desk/internal/store"
	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

var testUser = models.User{ID: 42, Username: "alice", Role: models.RoleManager, PropertyID: 9}

func issueToken(t *testing.T, user models.User, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("hotel-api", user, ttl, "test-sign-key")
	require.NoError(t, err)
	return token
}

func testPair(t *testing.T, ttl time.Duration) models.CredentialPair {
	return models.CredentialPair{AccessToken: issueToken(t, testUser, ttl), RefreshToken: "refresh-1"}
}

func TestManager_InstallAndRead(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	m := NewManager(repo, logger.Nop())

	assert.False(t, m.Authenticated())
	_, err := m.Current()
	assert.ErrorIs(t, err, ErrNoSession)

	pair := testPair(t, time.Hour)
	require.NoError(t, m.Install(ctx, pair, &testUser))

	got, ok := m.Credentials()
	require.True(t, ok)
	assert.Equal(t, pair, got)
	assert.True(t, m.Authenticated())

	user, ok := m.User()
	require.True(t, ok)
	assert.Equal(t, testUser, user)

	s, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, models.RoleManager, s.Role)
	assert.Equal(t, int64(9), s.PropertyID)

	persisted, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, persisted.Credentials)
	assert.Equal(t, &testUser, persisted.User)
}

func TestManager_InstallRejectsPartialPair(t *testing.T) {
	m := NewManager(store.NewMemorySessionRepository(), logger.Nop())

	tests := []models.CredentialPair{
		{},
		{AccessToken: "a"},
		{RefreshToken: "r"},
		{AccessToken: "  ", RefreshToken: "r"},
	}
	for _, pair := range tests {
		err := m.Install(context.Background(), pair, nil)
		assert.ErrorIs(t, err, ErrPartialCredentials)
	}
	assert.False(t, m.Authenticated())
}

func TestManager_InstallNilUserKeepsUser(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil, logger.Nop())

	require.NoError(t, m.Install(ctx, testPair(t, time.Hour), &testUser))
	require.NoError(t, m.Install(ctx, models.CredentialPair{AccessToken: "a2", RefreshToken: "r2"}, nil))

	user, ok := m.User()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	pair, _ := m.Credentials()
	assert.Equal(t, "a2", pair.AccessToken)
}

func TestManager_InstallKeepsMemoryWhenPersistFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	m := NewManager(repo, logger.Nop())

	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	pair := testPair(t, time.Hour)
	require.NoError(t, m.Install(context.Background(), pair, &testUser))

	got, ok := m.Credentials()
	assert.True(t, ok)
	assert.Equal(t, pair, got)
}

func TestManager_InstallPersistsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	m := NewManager(repo, logger.Nop())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	pair := models.CredentialPair{AccessToken: "a", RefreshToken: "r"}
	repo.EXPECT().SaveSession(gomock.Any(), store.LocalSession{
		Credentials: pair,
		User:        &testUser,
		UpdatedAt:   fixed,
	}).Return(nil)

	require.NoError(t, m.Install(context.Background(), pair, &testUser))
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	m := NewManager(repo, logger.Nop())

	require.NoError(t, m.Install(ctx, testPair(t, time.Hour), &testUser))
	require.NoError(t, m.Clear(ctx))
	state1, ok1 := m.Credentials()
	require.NoError(t, m.Clear(ctx))
	state2, ok2 := m.Credentials()

	assert.Equal(t, state1, state2)
	assert.Equal(t, ok1, ok2)
	assert.False(t, m.Authenticated())
	_, ok := m.User()
	assert.False(t, ok)

	_, err := repo.LoadSession(ctx)
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestManager_ClearReportsPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	m := NewManager(repo, logger.Nop())

	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteSession(gomock.Any()).Return(errors.New("readonly"))

	require.NoError(t, m.Install(context.Background(), testPair(t, time.Hour), nil))
	err := m.Clear(context.Background())

	assert.Error(t, err)
	assert.False(t, m.Authenticated())
}

func TestManager_Restore(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()

	first := NewManager(repo, logger.Nop())
	pair := testPair(t, time.Hour)
	require.NoError(t, first.Install(ctx, pair, &testUser))

	second := NewManager(repo, logger.Nop())
	require.NoError(t, second.Restore(ctx))

	got, ok := second.Credentials()
	require.True(t, ok)
	assert.Equal(t, pair, got)
	user, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, testUser, user)
}

func TestManager_RestoreErrors(t *testing.T) {
	t.Run("nothing persisted", func(t *testing.T) {
		m := NewManager(store.NewMemorySessionRepository(), logger.Nop())
		assert.ErrorIs(t, m.Restore(context.Background()), ErrNoSession)
	})

	t.Run("no repository", func(t *testing.T) {
		m := NewManager(nil, logger.Nop())
		assert.ErrorIs(t, m.Restore(context.Background()), ErrNoSession)
	})

	t.Run("partial session is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSessionRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().LoadSession(gomock.Any()).Return(store.LocalSession{}, store.ErrPartialSession),
			repo.EXPECT().DeleteSession(gomock.Any()).Return(nil),
		)

		m := NewManager(repo, logger.Nop())
		assert.ErrorIs(t, m.Restore(context.Background()), ErrPartialCredentials)
		assert.False(t, m.Authenticated())
	})

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockSessionRepository(ctrl)
		boom := errors.New("boom")
		repo.EXPECT().LoadSession(gomock.Any()).Return(store.LocalSession{}, boom)

		m := NewManager(repo, logger.Nop())
		assert.ErrorIs(t, m.Restore(context.Background()), boom)
	})
}

func TestManager_CurrentExpired(t *testing.T) {
	m := NewManager(nil, logger.Nop())
	require.NoError(t, m.Install(context.Background(), testPair(t, -time.Minute), nil))

	s, err := m.Current()
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int64(42), s.UserID)
}

func TestManager_CurrentMalformedToken(t *testing.T) {
	m := NewManager(nil, logger.Nop())
	require.NoError(t, m.Install(context.Background(), models.CredentialPair{AccessToken: "opaque", RefreshToken: "r"}, nil))

	_, err := m.Current()
	assert.ErrorIs(t, err, ErrMalformedToken)
	assert.True(t, m.ExpiresWithin(time.Minute))
}

func TestManager_CurrentFallsBackToUser(t *testing.T) {
	m := NewManager(nil, logger.Nop())
	token := issueToken(t, models.User{ID: 42}, time.Hour)
	require.NoError(t, m.Install(context.Background(), models.CredentialPair{AccessToken: token, RefreshToken: "r"}, &testUser))

	s, err := m.Current()
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, models.RoleManager, s.Role)
	assert.Equal(t, int64(9), s.PropertyID)
}

func TestManager_ExpiresWithin(t *testing.T) {
	m := NewManager(nil, logger.Nop())
	assert.False(t, m.ExpiresWithin(time.Hour), "nothing installed")

	require.NoError(t, m.Install(context.Background(), testPair(t, 10*time.Minute), nil))
	assert.False(t, m.ExpiresWithin(5*time.Minute))
	assert.True(t, m.ExpiresWithin(15*time.Minute))
}

func TestManager_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemorySessionRepository(), logger.Nop())
	pair := testPair(t, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Install(ctx, pair, &testUser))
		}()
		go func() {
			defer wg.Done()
			if got, ok := m.Credentials(); ok {
				assert.True(t, got.IsComplete())
			}
		}()
	}
	wg.Wait()

	assert.True(t, m.Authenticated())
}

// gatedRepository holds SaveSession until release is closed.
type gatedRepository struct {
	store.SessionRepository

	saving  chan struct{}
	release chan struct{}
}

func newGatedRepository() *gatedRepository {
	return &gatedRepository{
		SessionRepository: store.NewMemorySessionRepository(),
		saving:            make(chan struct{}, 1),
		release:           make(chan struct{}),
	}
}

func (g *gatedRepository) SaveSession(ctx context.Context, session store.LocalSession) error {
	select {
	case g.saving <- struct{}{}:
	default:
	}
	<-g.release
	return g.SessionRepository.SaveSession(ctx, session)
}

func TestManager_ClearAfterSlowInstallLeavesStorageEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newGatedRepository()
	m := NewManager(repo, logger.Nop())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, m.Install(ctx, testPair(t, time.Hour), &testUser))
	}()
	<-repo.saving

	go func() {
		defer wg.Done()
		assert.NoError(t, m.Clear(ctx))
	}()
	time.Sleep(20 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	assert.False(t, m.Authenticated())
	_, err := repo.LoadSession(ctx)
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestManager_InstallIfCurrent(t *testing.T) {
	ctx := context.Background()
	next := models.CredentialPair{AccessToken: issueToken(t, testUser, time.Hour), RefreshToken: "refresh-2"}

	t.Run("installs over the exchanged pair", func(t *testing.T) {
		repo := store.NewMemorySessionRepository()
		m := NewManager(repo, logger.Nop())
		require.NoError(t, m.Install(ctx, testPair(t, time.Hour), &testUser))

		ok, err := m.InstallIfCurrent(ctx, "refresh-1", next, nil)
		require.NoError(t, err)
		assert.True(t, ok)

		got, _ := m.Credentials()
		assert.Equal(t, next, got)
		local, err := repo.LoadSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, next, local.Credentials)
	})

	t.Run("skips a cleared session", func(t *testing.T) {
		repo := store.NewMemorySessionRepository()
		m := NewManager(repo, logger.Nop())
		require.NoError(t, m.Install(ctx, testPair(t, time.Hour), &testUser))
		require.NoError(t, m.Clear(ctx))

		ok, err := m.InstallIfCurrent(ctx, "refresh-1", next, &testUser)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.False(t, m.Authenticated())
		_, err = repo.LoadSession(ctx)
		assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	})

	t.Run("skips a replaced session", func(t *testing.T) {
		m := NewManager(nil, logger.Nop())
		other := models.CredentialPair{AccessToken: "a3", RefreshToken: "refresh-3"}
		require.NoError(t, m.Install(ctx, other, nil))

		ok, err := m.InstallIfCurrent(ctx, "refresh-1", next, nil)
		require.NoError(t, err)
		assert.False(t, ok)

		got, _ := m.Credentials()
		assert.Equal(t, other, got)
	})

	t.Run("rejects a partial pair", func(t *testing.T) {
		m := NewManager(nil, logger.Nop())
		ok, err := m.InstallIfCurrent(ctx, "refresh-1", models.CredentialPair{AccessToken: "a"}, nil)
		assert.ErrorIs(t, err, ErrPartialCredentials)
		assert.False(t, ok)
	})
}
