// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/MKhiriev/go-hotel-desk/internal/adapter"
	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/crypto"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
	"github.com/MKhiriev/go-hotel-desk/internal/service"
	"github.com/MKhiriev/go-hotel-desk/internal/session"
	"github.com/MKhiriev/go-hotel-desk/internal/store"
	"github.com/MKhiriev/go-hotel-desk/internal/workers"
)

type App struct {
	args []string
	out  io.Writer

	storages   *store.ClientStorages
	api        adapter.APIClient
	services   *service.Services
	refreshJob *workers.SessionRefreshJob
	workers    *workers.Workers

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the client stack described by cfg. Command output is
// written to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger, out io.Writer) (*App, error) {
	var sealer crypto.Sealer
	if cfg.App.StorageKey != "" {
		s, err := crypto.NewSealer(cfg.App.StorageKey)
		if err != nil {
			log.Err(err).Str("func", "NewApp").Msg("error creating token sealer")
			return nil, fmt.Errorf("create token sealer: %w", err)
		}
		sealer = s
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	manager := session.NewManager(storages.SessionRepository, log)

	api, err := adapter.NewHTTPAPIClient(cfg.Adapter, manager, log)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("create api client: %w", err), storages.Close())
	}

	services, err := service.NewServices(cfg.App, api, manager, log)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("create services: %w", err), storages.Close())
	}

	refreshJob := workers.NewSessionRefreshJob(manager, api, cfg.Workers, cfg.App.RefreshLeeway, log)

	return &App{
		args:       cfg.Args,
		out:        out,
		storages:   storages,
		api:        api,
		services:   services,
		refreshJob: refreshJob,
		workers:    workers.NewWorkers(refreshJob),
		logger:     log,
	}, nil
}

// Run executes the subcommand given on the command line. SIGINT and SIGTERM
// cancel it.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Execute(ctx, a.args)
}

// Execute runs the subcommand args[0] with the remaining arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, available: %s", ErrNoCommand, commandNames())
	}

	name := args[0]
	cmd, ok := a.commands()[name]
	if !ok {
		return fmt.Errorf("%w %q, available: %s", ErrUnknownCommand, name, commandNames())
	}

	if cmd.needsSession {
		if err := a.restoreSession(ctx); err != nil {
			return err
		}
	}

	err := cmd.run(ctx, args[1:])
	if errors.Is(err, adapter.ErrAuthExpired) {
		a.logger.Warn().Err(err).Str("func", "App.Execute").Str("command", name).Msg("session is no longer valid")
		return fmt.Errorf("%w: %w", ErrLoginRequired, err)
	}
	return err
}

// Close stops the background workers and releases local storage.
func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}

func (a *App) restoreSession(ctx context.Context) error {
	err := a.services.AuthService.Restore(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrPartialCredentials):
		return fmt.Errorf("%w: %w", ErrLoginRequired, err)
	default:
		a.logger.Err(err).Str("func", "App.restoreSession").Msg("failed to restore session")
		return fmt.Errorf("restore session: %w", err)
	}
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
