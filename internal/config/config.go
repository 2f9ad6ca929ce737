// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the user
// client. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: message locale and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the durable session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the user API address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Locale selects the language of user-facing error messages
	// ("fr" or "en"; other tags are matched to the closest supported one).
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// LogFile is the path log entries are appended to. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends used by the
// client.
type Storage struct {
	// Session holds the active-user-id store settings.
	Session Session `envPrefix:"SESSION_"`
}

// Session selects and configures the session store backend.
type Session struct {
	// DSN picks the backend: "memory" for an in-process map, a redis:// or
	// rediss:// URL for Redis, anything else is a SQLite file path.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the outbound user API transport.
type Adapter struct {
	// HTTPAddress is the root resource URL of the user API
	// (e.g. "http://localhost:8080/users"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied before any other source.
const (
	DefaultHTTPAddress    = "http://localhost:8080/users"
	DefaultRequestTimeout = 15 * time.Second
	DefaultSessionDSN     = "user-client.db"
	DefaultLocale         = "fr"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Locale: DefaultLocale},
		Storage: Storage{
			Session: Session{DSN: DefaultSessionDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// The result is not validated; [GetClientConfig] does that.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(commandLine()).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
