// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/validators"
	"github.com/MKhiriev/go-hotel-desk/models"
)

type authService struct {
	api       adapter.APIClient
	session   SessionHolder
	validator validators.Validator

	logger *logger.Logger
}

func NewAuthService(api adapter.APIClient, session SessionHolder, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{api: api, session: session, validator: validator, logger: logger}
}

func (s *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	req := models.LoginRequest{Username: strings.TrimSpace(username), Password: password}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}

	auth, err := s.api.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return models.User{}, mapAdapterError(err)
	}

	return auth.User, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.api.Logout(ctx)
}

func (s *authService) Restore(ctx context.Context) error {
	if err := s.session.Restore(ctx); err != nil {
		return err
	}

	if current, err := s.session.Current(); err == nil {
		s.logger.Debug().
			Str("func", "authService.Restore").
			Int64("user_id", current.UserID).
			Time("expires_at", current.ExpiresAt).
			Msg("session restored")
	}
	return nil
}

func (s *authService) Current() (models.Session, error) {
	return s.session.Current()
}
