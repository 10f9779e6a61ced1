// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

// RequestIDHeader carries the id of a logical request. A replay after a
// refresh reuses the id of the original attempt.
const RequestIDHeader = "X-Request-ID"

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// pendingRequest is everything needed to build the request again for its
// single replay. The body is encoded once so both attempts send the same
// bytes.
type pendingRequest struct {
	method    string
	path      string
	query     map[string]string
	body      []byte
	requestID string
}

func (c *Client) newPendingRequest(ctx context.Context, method, path string, body any, query map[string]string) (*pendingRequest, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if _, ok := allowedMethods[method]; !ok {
		return nil, validationError("unsupported method %q", method)
	}

	path, err := relativePath(path)
	if err != nil {
		return nil, err
	}

	p := &pendingRequest{
		method: method,
		path:   path,
		query:  query,
	}

	if body != nil {
		switch b := body.(type) {
		case json.RawMessage:
			p.body = b
		case []byte:
			p.body = b
		default:
			if p.body, err = json.Marshal(body); err != nil {
				return nil, validationError("encode request body: %w", err)
			}
		}
	}

	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		p.requestID = id
	} else {
		p.requestID = c.ids.Generate()
	}

	return p, nil
}

// relativePath rejects anything that could leave the configured base URL.
func relativePath(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", validationError("empty path")
	}
	if strings.HasPrefix(raw, "//") {
		return "", validationError("path %q must be relative to the base url", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", validationError("invalid path %q: %w", raw, err)
	}
	if u.IsAbs() || u.Host != "" {
		return "", validationError("path %q must be relative to the base url", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", validationError("path %q must not carry a query or fragment", raw)
	}

	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return raw, nil
}

func isRefreshTarget(path string) bool {
	return strings.TrimRight(path, "/") == RefreshPath
}

// do runs the pipeline for an authenticated request.
func (c *Client) do(ctx context.Context, p *pendingRequest) (*resty.Response, error) {
	token := c.accessToken()

	resp, err := c.send(c.attachAuth(ctx, p, token), p)
	if err != nil {
		return nil, err
	}

	return c.retryIfAuthExpired(ctx, p, token, resp)
}

func (c *Client) accessToken() string {
	pair, ok := c.session.Credentials()
	if !ok {
		return ""
	}
	return pair.AccessToken
}

// attachAuth builds a transport request for p. The Authorization header is
// set only when token is not empty and p does not target the refresh
// endpoint.
func (c *Client) attachAuth(ctx context.Context, p *pendingRequest, token string) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, p.requestID)

	if len(p.query) > 0 {
		req.SetQueryParams(p.query)
	}
	if p.body != nil {
		req.SetHeader("Content-Type", "application/json").
			SetBody(p.body)
	}
	if token != "" && !isRefreshTarget(p.path) {
		req.SetAuthToken(token)
	}

	return req
}

// send executes req. Only transport failures are returned as errors; every
// HTTP response, including non-2xx, is returned to the caller.
func (c *Client) send(req *resty.Request, p *pendingRequest) (*resty.Response, error) {
	log := c.logger.WithRequestID(p.requestID)

	start := time.Now()
	resp, err := req.Execute(p.method, p.path)
	if err != nil {
		log.Err(err).
			Str("func", "Client.send").
			Str("method", p.method).
			Str("path", p.path).
			Msg("request failed without a response")
		return nil, networkError(err)
	}

	log.Debug().
		Str("func", "Client.send").
		Str("method", p.method).
		Str("path", p.path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return resp, nil
}

// retryIfAuthExpired recovers a 401 at most once. sentToken is the access
// token the first attempt carried.
func (c *Client) retryIfAuthExpired(ctx context.Context, p *pendingRequest, sentToken string, resp *resty.Response) (*resty.Response, error) {
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}

	if isRefreshTarget(p.path) {
		c.clear(ctx, "Client.retryIfAuthExpired")
		return nil, authExpiredError(mapHTTPError(resp))
	}

	pair, ok := c.session.Credentials()
	if !ok || pair.RefreshToken == "" {
		c.clear(ctx, "Client.retryIfAuthExpired")
		return nil, authExpiredError(ErrNoRefreshToken)
	}

	next := pair.AccessToken
	if pair.AccessToken == sentToken {
		refreshed, err := c.refreshShared(ctx, pair.RefreshToken)
		if err != nil {
			return nil, err
		}
		next = refreshed.AccessToken
	} else {
		c.logger.Debug().
			Str("func", "Client.retryIfAuthExpired").
			Str("request_id", p.requestID).
			Msg("credentials rotated by another request, replaying without refresh")
	}

	// The replay's result is final: a second 401 is returned as is.
	return c.send(c.attachAuth(ctx, p, next), p)
}

// refreshShared exchanges refreshToken and installs the result. Concurrent
// callers holding the same refresh token share one exchange. Any failure
// clears the session. A caller whose ctx ends stops waiting; the exchange
// itself keeps running for the others.
func (c *Client) refreshShared(ctx context.Context, refreshToken string) (models.CredentialPair, error) {
	ch := c.refreshGroup.DoChan(refreshToken, func() (any, error) {
		// A flight for the same token may have completed between the
		// caller reading the session and joining the group.
		if pair, ok := c.session.Credentials(); ok && pair.IsComplete() && pair.RefreshToken != refreshToken {
			return pair, nil
		}

		// Detached so one caller giving up does not fail every waiter.
		refreshCtx := context.WithoutCancel(ctx)

		auth, err := c.exchange(refreshCtx, refreshToken)
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "Client.refreshShared").Msg("refresh rejected, clearing session")
			c.clearIfCurrent(refreshCtx, refreshToken)
			return nil, authExpiredError(err)
		}

		var user *models.User
		if auth.User.ID != 0 {
			user = &auth.User
		}
		pair := auth.Credentials()
		installed, err := c.session.InstallIfCurrent(refreshCtx, refreshToken, pair, user)
		if err != nil {
			c.clearIfCurrent(refreshCtx, refreshToken)
			return nil, authExpiredError(err)
		}
		if !installed {
			// Logged in again while the exchange was running.
			if current, ok := c.session.Credentials(); ok && current.IsComplete() {
				return current, nil
			}
			c.logger.Warn().Str("func", "Client.refreshShared").Msg("session cleared during refresh, discarding refreshed pair")
			return nil, authExpiredError(ErrSessionCleared)
		}

		c.logger.Info().Str("func", "Client.refreshShared").Msg("session refreshed")
		return pair, nil
	})

	select {
	case <-ctx.Done():
		return models.CredentialPair{}, networkError(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return models.CredentialPair{}, res.Err
		}
		if res.Shared {
			c.logger.Debug().Str("func", "Client.refreshShared").Msg("joined in-flight refresh")
		}
		return res.Val.(models.CredentialPair), nil
	}
}

// clearIfCurrent clears the session unless a newer pair was installed while
// the refresh was in flight.
func (c *Client) clearIfCurrent(ctx context.Context, refreshToken string) {
	if pair, ok := c.session.Credentials(); ok && pair.RefreshToken != refreshToken {
		return
	}
	c.clear(ctx, "Client.clearIfCurrent")
}

func (c *Client) clear(ctx context.Context, fn string) {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Err(err).Str("func", fn).Msg("failed to clear session")
	}
}
