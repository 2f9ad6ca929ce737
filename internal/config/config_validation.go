// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// validate checks the client view of the merged configuration. Sources are
// merged unchecked, so this is the only gate before the values are used.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.Session.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Locale != "" {
		if _, err := language.Parse(cfg.App.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalidAppConfigs, cfg.App.Locale, err)
		}
	}

	return nil
}
