// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// recipe book client and the stand-in catalog server. It is populated by
// merging environment variables, command-line flags, an optional JSON file
// and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: paging and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the stand-in catalog server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote catalog endpoint used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the client storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// PageSize is the number of recipes requested per catalog page.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// TokenSignKey is the HMAC key the stand-in server signs access tokens with.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued access tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued access token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the stand-in catalog server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the outbound catalog client.
type Adapter struct {
	// CatalogURL is the base URL of the remote catalog service.
	// Env: ADAPTER_CATALOG_URL
	CatalogURL string `env:"CATALOG_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. defaults
func GetStructuredConfig(defaults *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults(defaults).
		build()
}
