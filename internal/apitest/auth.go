// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/utils"
	"github.com/MKhiriev/go-hotel-desk/models"
)

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	s.loginCalls.Add(1)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid login body")
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	account, ok := s.accounts[req.Username]
	s.mu.Unlock()
	if !ok || account.Password != req.Password {
		utils.WriteError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	s.writeAuthResponse(w, account.User)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	s.refreshCalls.Add(1)

	s.mu.Lock()
	status, delay := s.refreshStatus, s.refreshDelay
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if status != 0 {
		utils.WriteError(w, "", status)
		return
	}

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		log.Err(err).Msg("invalid refresh body")
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}

	// refresh tokens are single use
	s.mu.Lock()
	userID, ok := s.refreshTokens[req.RefreshToken]
	delete(s.refreshTokens, req.RefreshToken)
	s.mu.Unlock()
	if !ok {
		utils.WriteError(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, found := s.userByID(userID)
	if !found {
		utils.WriteError(w, "user not found", http.StatusUnauthorized)
		return
	}

	s.writeAuthResponse(w, user)
}

func (s *Server) writeAuthResponse(w http.ResponseWriter, user models.User) {
	pair, err := s.IssuePair(user)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, http.StatusOK)
}

func (s *Server) userByID(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range s.accounts {
		if account.User.ID == id {
			return account.User, true
		}
	}
	return models.User{}, false
}

// createUser registers a staff account. Only managers may do so.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := utils.GetUserIDFromContext(r.Context())
	if caller, ok := s.userByID(callerID); !ok || caller.Role != models.RoleManager {
		utils.WriteError(w, "", http.StatusForbidden)
		return
	}

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Username]; exists {
		s.mu.Unlock()
		utils.WriteError(w, "username already exists", http.StatusConflict)
		return
	}
	s.mu.Unlock()

	record := map[string]any{
		"username":    req.Username,
		"email":       req.Email,
		"role":        req.Role,
		"property_id": req.PropertyID,
	}
	created := s.data.insert(collUsers, record)

	user := models.User{
		ID:         created.id(),
		Username:   req.Username,
		Email:      req.Email,
		Role:       req.Role,
		PropertyID: req.PropertyID,
	}
	s.mu.Lock()
	s.accounts[req.Username] = Account{User: user, Password: req.Password}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}
