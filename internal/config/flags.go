// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds an absolute http(s) URL. It implements the flag.Value
// interface.
type BaseURL struct {
	URL *url.URL
}

// ParseFlags parses the global configuration flags from args. Parsing stops
// at the first non-flag argument; the remaining arguments are returned as-is
// so that a subcommand can parse its own flags.
//
// Flags:
//
//	-a hotel API base URL (e.g. http://localhost:5000/api)
//	-t request timeout (e.g. "15s")
//	-d session storage DSN (":memory:", "*.json" or SQLite path)
//	-k storage key used to seal tokens at rest
//	-c/-config json file path with configs
//	-refresh-leeway session refresh leeway (e.g. "5m")
//	-refresh-interval session refresher interval (e.g. "1m")
//	-tax-rate invoice preview tax rate (e.g. 0.1)
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var address BaseURL
	var requestTimeout time.Duration
	var databaseDSN string
	var storageKey string
	var jsonConfigPath string
	var refreshLeeway time.Duration
	var refreshInterval time.Duration
	var taxRate float64

	fs := flag.NewFlagSet("hotel-desk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&address, "a", "Hotel API base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Session storage DSN")
	fs.StringVar(&storageKey, "k", "", "Storage key for sealing tokens at rest")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&refreshLeeway, "refresh-leeway", 0, "Refresh the session this long before expiry (e.g., 5m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Session refresher interval (e.g., 1m)")
	fs.Float64Var(&taxRate, "tax-rate", 0, "Invoice preview tax rate (e.g., 0.1)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			StorageKey:     storageKey,
			RefreshLeeway:  refreshLeeway,
			InvoiceTaxRate: taxRate,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

// String returns the URL without a trailing slash, or an empty string when
// unset.
func (a *BaseURL) String() string {
	if a == nil || a.URL == nil {
		return ""
	}

	return strings.TrimRight(a.URL.String(), "/")
}

// Set parses s as an absolute http or https URL with a host.
func (a *BaseURL) Set(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need an http or https URL")
	}
	if u.Host == "" {
		return errors.New("URL must include a host")
	}

	a.URL = u
	return nil
}
