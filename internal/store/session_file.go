// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-hotel-desk/internal/logger"
)

// sessionFile is the on-disk layout of the JSON file backend.
type sessionFile struct {
	Values    map[string]string `json:"values"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// fileSessionRepository keeps the session in a single JSON document.
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so readers never observe a half-written session.
type fileSessionRepository struct {
	mu     sync.Mutex
	path   string
	logger *logger.Logger
}

// NewFileSessionRepository returns a repository backed by the JSON file at
// path. The file and its directory are created on first save.
func NewFileSessionRepository(path string, logger *logger.Logger) SessionRepository {
	return &fileSessionRepository{
		path:   path,
		logger: logger,
	}
}

func (f *fileSessionRepository) SaveSession(ctx context.Context, session LocalSession) error {
	log := logger.FromContext(ctx)

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
	data, err := json.MarshalIndent(sessionFile{Values: values, UpdatedAt: session.UpdatedAt}, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding session file: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err = writeFileAtomic(f.path, data); err != nil {
		log.Err(err).Str("func", "fileSessionRepository.SaveSession").Str("path", f.path).Msg("error writing session file")
		return err
	}

	return nil
}

func (f *fileSessionRepository) LoadSession(ctx context.Context) (LocalSession, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	data, err := os.ReadFile(f.path)
	f.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "fileSessionRepository.LoadSession").Str("path", f.path).Msg("error reading session file")
		return LocalSession{}, fmt.Errorf("error reading session file: %w", err)
	}

	var file sessionFile
	if err = json.Unmarshal(data, &file); err != nil {
		log.Err(err).Str("func", "fileSessionRepository.LoadSession").Str("path", f.path).Msg("error decoding session file")
		return LocalSession{}, fmt.Errorf("error decoding session file: %w", err)
	}

	return sessionFromValues(file.Values, file.UpdatedAt)
}

func (f *fileSessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "fileSessionRepository.DeleteSession").Str("path", f.path).Msg("error removing session file")
		return fmt.Errorf("error removing session file: %w", err)
	}

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp session file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp session file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing session file: %w", err)
	}
	return nil
}
