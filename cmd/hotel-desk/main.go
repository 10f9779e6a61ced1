// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-hotel-desk/internal/client"
	"github.com/MKhiriev/go-hotel-desk/internal/config"
	"github.com/MKhiriev/go-hotel-desk/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	setBuildInfo()

	log := logger.NewClientLogger("hotel-desk")
	log.Debug().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("starting")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		exit(err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	app, err := client.NewApp(context.Background(), cfg, log, os.Stdout)
	if err != nil {
		log.Err(err).Msg("init client app error")
		exit(err)
	}

	runErr := app.Run()
	if err = app.Close(); err != nil {
		log.Err(err).Msg("error closing client app")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client run error")
		exit(runErr)
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, "hotel-desk:", err)
	os.Exit(1)
}

func setBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
}
