// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

// Unauthenticated endpoints.
const (
	LoginPath   = "/users/login"
	RefreshPath = "/users/refresh-token"
)

// Client is the HTTP implementation of [APIClient].
type Client struct {
	client  *utils.HTTPClient
	session SessionStore
	ids     *utils.UUIDGenerator

	refreshGroup singleflight.Group

	logger *logger.Logger
}

var _ APIClient = (*Client)(nil)

// NewHTTPAPIClient returns a client for the API at adapterCfg.HTTPAddress
// that reads and writes credentials through session.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// an absolute URL.
func NewHTTPAPIClient(adapterCfg config.ClientAdapter, session SessionStore, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewAPIHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetLogger(newRestyLogger(logger))

	return &Client{
		client:  client,
		session: session,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Request implements [APIClient].
func (c *Client) Request(ctx context.Context, method, path string, body any, query map[string]string) (json.RawMessage, error) {
	p, err := c.newPendingRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, p)
	if err != nil {
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}
	return json.RawMessage(resp.Body()), nil
}

// SetCredentials implements [APIClient]. A pair missing either token is
// rejected with a validation error and leaves the session untouched.
func (c *Client) SetCredentials(ctx context.Context, pair *models.CredentialPair) error {
	if pair == nil {
		return c.session.Clear(ctx)
	}
	if !pair.IsComplete() {
		return validationError("credential pair must carry both tokens")
	}
	return c.session.Install(ctx, *pair, nil)
}

// Credentials implements [APIClient].
func (c *Client) Credentials() (models.CredentialPair, bool) {
	return c.session.Credentials()
}

// Login implements [APIClient]. It POSTs to LoginPath without a bearer token;
// on success the returned pair and user are installed.
func (c *Client) Login(ctx context.Context, username, password string) (models.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.AuthResponse{}, validationError("username and password are required")
	}

	p, err := c.newPendingRequest(ctx, http.MethodPost, LoginPath, models.LoginRequest{Username: username, Password: password}, nil)
	if err != nil {
		return models.AuthResponse{}, err
	}

	resp, err := c.send(c.attachAuth(ctx, p, ""), p)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	auth, err := decodeAuthResponse(resp.Body(), resp.StatusCode())
	if err != nil {
		return models.AuthResponse{}, err
	}

	user := auth.User
	if err = c.session.Install(ctx, auth.Credentials(), &user); err != nil {
		return models.AuthResponse{}, validationError("install credentials: %w", err)
	}
	c.logger.Info().Str("func", "Client.Login").Str("request_id", p.requestID).Int64("user_id", user.ID).Msg("logged in")

	return auth, nil
}

// Refresh implements [APIClient].
func (c *Client) Refresh(ctx context.Context, refreshToken string) (models.CredentialPair, error) {
	auth, err := c.exchange(ctx, refreshToken)
	if err != nil {
		return models.CredentialPair{}, err
	}
	return auth.Credentials(), nil
}

// RefreshSession implements [APIClient].
func (c *Client) RefreshSession(ctx context.Context) (models.CredentialPair, error) {
	pair, ok := c.session.Credentials()
	if !ok || pair.RefreshToken == "" {
		c.clear(ctx, "Client.RefreshSession")
		return models.CredentialPair{}, authExpiredError(ErrNoRefreshToken)
	}

	return c.refreshShared(ctx, pair.RefreshToken)
}

// Logout implements [APIClient]. The API has no logout endpoint; the
// session is dropped locally.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.session.Clear(ctx); err != nil {
		return err
	}
	c.logger.Info().Str("func", "Client.Logout").Msg("logged out")
	return nil
}

// exchange POSTs refreshToken to RefreshPath without a bearer token.
func (c *Client) exchange(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return models.AuthResponse{}, validationError("refresh token is required")
	}

	p, err := c.newPendingRequest(ctx, http.MethodPost, RefreshPath, models.RefreshRequest{RefreshToken: refreshToken}, nil)
	if err != nil {
		return models.AuthResponse{}, err
	}

	resp, err := c.send(c.attachAuth(ctx, p, ""), p)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if err = mapRefreshError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return decodeAuthResponse(resp.Body(), resp.StatusCode())
}

func decodeAuthResponse(body []byte, status int) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return models.AuthResponse{}, &APIError{Kind: KindHTTPStatus, StatusCode: status, Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	if !auth.Credentials().IsComplete() {
		return models.AuthResponse{}, &APIError{Kind: KindHTTPStatus, StatusCode: status, Err: fmt.Errorf("%w: missing tokens", ErrMalformedResponse)}
	}
	return auth, nil
}
