// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// minStorageKeyLength is the shortest accepted APP_STORAGE_KEY.
const minStorageKeyLength = 16

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Host == "" {
		return fmt.Errorf("%w: address %q is not an absolute URL", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.RefreshLeeway < 0 {
		return fmt.Errorf("%w: negative refresh leeway", ErrInvalidAppConfigs)
	}
	if cfg.App.InvoiceTaxRate < 0 || cfg.App.InvoiceTaxRate > 1 {
		return fmt.Errorf("%w: tax rate %v out of [0, 1]", ErrInvalidAppConfigs, cfg.App.InvoiceTaxRate)
	}
	if cfg.App.StorageKey != "" && len(cfg.App.StorageKey) < minStorageKeyLength {
		return fmt.Errorf("%w: storage key shorter than %d bytes", ErrInvalidAppConfigs, minStorageKeyLength)
	}

	return nil
}
