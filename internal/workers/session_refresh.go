// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/session"
)

// SessionRefreshJob refreshes the installed session before its access token
// expires, so that requests rarely meet a 401.
type SessionRefreshJob struct {
	reader   session.Reader
	api      adapter.APIClient
	interval time.Duration
	leeway   time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Worker = (*SessionRefreshJob)(nil)

// NewSessionRefreshJob creates a job that checks reader every
// cfg.RefreshInterval and refreshes through api once the access token
// expires within leeway. Non-positive durations fall back to the config
// defaults. The job is idle until Start is called.
func NewSessionRefreshJob(reader session.Reader, api adapter.APIClient, cfg config.ClientWorkers, leeway time.Duration, logger *logger.Logger) *SessionRefreshJob {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	if leeway <= 0 {
		leeway = config.DefaultRefreshLeeway
	}

	return &SessionRefreshJob{
		reader:   reader,
		api:      api,
		interval: interval,
		leeway:   leeway,
		logger:   logger,
	}
}

// Run implements Worker.
func (j *SessionRefreshJob) Run(ctx context.Context) {
	j.Start(ctx)
}

// Start stops any previously running loop, then checks the session once
// per interval in a background goroutine. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *SessionRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().
		Str("func", "SessionRefreshJob.Start").
		Dur("interval", j.interval).
		Dur("leeway", j.leeway).
		Msg("session refresh job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.RefreshIfExpiring(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *SessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// RefreshIfExpiring refreshes the session when an access token is installed
// and expires within the leeway. It does nothing otherwise.
func (j *SessionRefreshJob) RefreshIfExpiring(ctx context.Context) error {
	if !j.reader.Authenticated() || !j.reader.ExpiresWithin(j.leeway) {
		return nil
	}

	if _, err := j.api.RefreshSession(ctx); err != nil {
		if errors.Is(err, adapter.ErrAuthExpired) {
			j.logger.Warn().Err(err).Str("func", "SessionRefreshJob.RefreshIfExpiring").Msg("session expired, login required")
		} else {
			j.logger.Err(err).Str("func", "SessionRefreshJob.RefreshIfExpiring").Msg("proactive refresh failed")
		}
		return err
	}

	j.logger.Info().Str("func", "SessionRefreshJob.RefreshIfExpiring").Msg("session refreshed ahead of expiry")
	return nil
}
