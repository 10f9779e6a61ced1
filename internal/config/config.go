// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// hotel-desk client. It aggregates all sub-configurations and is populated by
// merging built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the at-rest storage key
	// and session refresh parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the durable session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the hotel API endpoint and transport timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// args holds positional command-line arguments left after flag parsing.
	args []string
}

// Storage groups the configuration for the durable session store.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// StorageKey is the secret used to derive the key that seals tokens at
	// rest. When empty, tokens are stored as-is.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// RefreshLeeway is how long before access-token expiry the background
	// refresher renews the session (e.g. "5m").
	// Env: APP_REFRESH_LEEWAY
	RefreshLeeway time.Duration `env:"REFRESH_LEEWAY"`

	// InvoiceTaxRate is the tax rate applied to client-side invoice previews
	// (e.g. 0.1 for 10%).
	// Env: APP_INVOICE_TAX_RATE
	InvoiceTaxRate float64 `env:"INVOICE_TAX_RATE"`

	// Version is the version string reported by the client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// DB holds connection settings for the session store.
type DB struct {
	// DSN selects the backend: ":memory:" keeps the session in memory,
	// a path ending in ".json" uses a JSON file, anything else is opened as
	// a SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the outbound hotel API transport.
type Adapter struct {
	// HTTPAddress is the base URL of the hotel API
	// (e.g. "http://localhost:5000/api"). Every request path is resolved
	// relative to it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the session refresher checks the access
	// token expiry.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Default configuration values.
const (
	DefaultAdapterAddress  = "http://localhost:5000/api"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultDSN             = "hotel-desk.db"
	DefaultRefreshLeeway   = 5 * time.Minute
	DefaultInvoiceTaxRate  = 0.1
	DefaultRefreshInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RefreshLeeway:  DefaultRefreshLeeway,
			InvoiceTaxRate: DefaultInvoiceTaxRate,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// Args returns the positional arguments that remained after flag parsing.
func (cfg *StructuredConfig) Args() []string {
	return cfg.args
}
