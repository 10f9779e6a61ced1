// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

const (
	// BasePath is the prefix every route is mounted under.
	BasePath = "/api"

	tokenIssuer  = "hotel-api"
	tokenSignKey = "apitest-sign-key"
)

// Account is a user the fake accepts at login.
type Account struct {
	User     models.User
	Password string
}

// RecordedRequest is a request as seen by the fake.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          string
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	accessTTL time.Duration
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	mu            sync.Mutex
	accounts      map[string]Account
	accessTokens  map[string]int64
	refreshTokens map[string]int64
	rejected      map[string]int
	refreshStatus int
	refreshDelay  time.Duration
	requests      []RecordedRequest
	data          *dataStore

	loginCalls   atomic.Int64
	refreshCalls atomic.Int64
}

// Option configures a [Server].
type Option func(*Server)

// WithAccount registers an account that can log in.
func WithAccount(user models.User, password string) Option {
	return func(s *Server) {
		s.accounts[user.Username] = Account{User: user, Password: password}
	}
}

// WithAccessTTL sets the lifetime of issued access tokens.
func WithAccessTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.accessTTL = ttl
	}
}

// WithLogger sets the logger of the fake.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts a fake API. Close it when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		accessTTL:     15 * time.Minute,
		ids:           utils.NewUUIDGenerator(),
		logger:        logger.Nop(),
		accounts:      make(map[string]Account),
		accessTokens:  make(map[string]int64),
		refreshTokens: make(map[string]int64),
		rejected:      make(map[string]int),
		data:          newDataStore(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.routes())
	return s
}

// BaseURL is the address the client should be configured with.
func (s *Server) BaseURL() string {
	return s.URL + BasePath
}

// IssuePair mints a valid pair for user without a login call.
func (s *Server) IssuePair(user models.User) (models.CredentialPair, error) {
	access, err := utils.GenerateJWTToken(tokenIssuer, user, s.accessTTL, tokenSignKey)
	if err != nil {
		return models.CredentialPair{}, err
	}
	refresh := s.ids.Generate()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessTokens[access] = user.ID
	s.refreshTokens[refresh] = user.ID

	return models.CredentialPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RevokeAccessTokens makes every issued access token fail with 401.
// Refresh tokens stay valid.
func (s *Server) RevokeAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessTokens = make(map[string]int64)
}

// RevokeRefreshTokens makes every issued refresh token unusable.
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshTokens = make(map[string]int64)
}

// FailRefresh makes the refresh endpoint answer with status. Zero restores
// normal behaviour.
func (s *Server) FailRefresh(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshStatus = status
}

// SetRefreshDelay delays every refresh exchange by d.
func (s *Server) SetRefreshDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshDelay = d
}

// RejectPath answers the next n requests to path (relative to BasePath)
// with 401, whatever token they carry. A negative n rejects forever.
func (s *Server) RejectPath(path string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected[path] = n
}

// LoginCalls returns how many login requests were received.
func (s *Server) LoginCalls() int {
	return int(s.loginCalls.Load())
}

// RefreshCalls returns how many refresh requests were received.
func (s *Server) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

// Requests returns a copy of every recorded request, oldest first.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestsTo returns the recorded requests for path (relative to BasePath).
func (s *Server) RequestsTo(path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range s.Requests() {
		if r.Path == BasePath+path {
			out = append(out, r)
		}
	}
	return out
}

// ResetRequests drops the recorded requests and call counters.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.loginCalls.Store(0)
	s.refreshCalls.Store(0)
}

func (s *Server) consumeRejection(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.rejected[path]
	if !ok || n == 0 {
		return false
	}
	if n > 0 {
		s.rejected[path] = n - 1
	}
	return true
}
