// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an [APIError].
type ErrorKind int

const (
	// KindNetwork means no response was received.
	KindNetwork ErrorKind = iota + 1
	// KindHTTPStatus means the server answered with a non-2xx status other
	// than a recovered 401.
	KindHTTPStatus
	// KindAuthExpired means the session could not be refreshed and the user
	// has to log in again. Credentials are already cleared.
	KindAuthExpired
	// KindValidation means the caller passed malformed input. Nothing was
	// sent.
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindAuthExpired:
		return "auth_expired"
	case KindValidation:
		return "validation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Kind sentinels. Every [APIError] matches exactly one of them with
// [errors.Is].
var (
	ErrNetwork     = errors.New("network error")
	ErrHTTPStatus  = errors.New("unexpected http status")
	ErrAuthExpired = errors.New("authentication expired")
	ErrValidation  = errors.New("invalid request")
)

// Status sentinels, matched by errors carrying the corresponding status
// code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Causes reported inside an [APIError].
var (
	ErrNoRefreshToken    = errors.New("no refresh token installed")
	ErrMalformedResponse = errors.New("malformed response body")
	ErrSessionCleared    = errors.New("session cleared during refresh")
)

// APIError is returned by every operation of [Client].
type APIError struct {
	Kind ErrorKind

	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int

	// Body is the trimmed response body, if any.
	Body string

	// Err is the underlying cause.
	Err error
}

func (e *APIError) Error() string {
	msg := e.Kind.String()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap exposes the kind sentinel, the status sentinel (if any) and the
// cause to [errors.Is] and [errors.As].
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 3)
	switch e.Kind {
	case KindNetwork:
		errs = append(errs, ErrNetwork)
	case KindHTTPStatus:
		errs = append(errs, ErrHTTPStatus)
	case KindAuthExpired:
		errs = append(errs, ErrAuthExpired)
	case KindValidation:
		errs = append(errs, ErrValidation)
	}
	if s := statusSentinel(e.StatusCode); s != nil && !errors.Is(e.Err, s) {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// StatusCode returns the HTTP status carried by err, if it is an [APIError]
// with a response.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode, true
	}
	return 0, false
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

func networkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Err: err}
}

func validationError(format string, args ...any) *APIError {
	return &APIError{Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

// NewValidationError reports input rejected before anything was sent.
func NewValidationError(cause error) *APIError {
	return &APIError{Kind: KindValidation, Err: cause}
}

func authExpiredError(cause error) *APIError {
	apiErr := &APIError{Kind: KindAuthExpired, Err: cause}
	var inner *APIError
	if errors.As(cause, &inner) {
		apiErr.StatusCode = inner.StatusCode
		apiErr.Body = inner.Body
		apiErr.Err = inner.Err
	}
	return apiErr
}
