// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// PortalConfig is the top-level configuration container for the multipool
// portal. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// lenient-JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type PortalConfig struct {
	// Portal holds the document locations the resolver reads from.
	Portal Portal `envPrefix:"PORTAL_"`

	// Website holds the HTTP statistics endpoint settings.
	Website Website `envPrefix:"WEBSITE_"`

	// CLI holds the TCP admin listener settings.
	CLI CLI `envPrefix:"CLI_"`

	// Exchange holds the exchange-rate client settings.
	Exchange Exchange `envPrefix:"EXCHANGE_"`

	// JSONFilePath is the optional path to a lenient-JSON configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Portal holds the document locations one resolution pass reads.
type Portal struct {
	// PoolConfigDir is the directory scanned (non-recursively) for
	// per-pool *.json documents.
	// Env: PORTAL_POOL_CONFIG_DIR
	PoolConfigDir string `env:"POOL_CONFIG_DIR"`

	// CoinConfigDir is the directory holding per-coin profile documents.
	// Env: PORTAL_COIN_CONFIG_DIR
	CoinConfigDir string `env:"COIN_CONFIG_DIR"`

	// DefaultPoolConfigPath is the optional path to the default pool
	// config document; its fields are merged into every pool document
	// that does not set them.
	// Env: PORTAL_DEFAULT_POOL_CONFIG
	DefaultPoolConfigPath string `env:"DEFAULT_POOL_CONFIG"`
}

// Website holds settings for the HTTP statistics endpoint. An empty
// Address disables the endpoint.
type Website struct {
	// Address is the TCP address the stats server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8117").
	// Env: WEBSITE_ADDRESS
	Address string `env:"ADDRESS"`

	// StatsInterval is how often portal counters are refreshed for the
	// stats endpoint (e.g. "30s").
	// Env: WEBSITE_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// CLI holds settings for the TCP admin command listener. An empty Address
// disables the listener.
type CLI struct {
	// Address is the TCP address the admin listener binds, normally a
	// loopback address (e.g. "127.0.0.1:17117").
	// Env: CLI_ADDRESS
	Address string `env:"ADDRESS"`
}

// Exchange holds settings for the outbound exchange-rate client. An empty
// BaseURL disables rate fetching; the stats endpoint then reports no
// rates instead of failing.
type Exchange struct {
	// BaseURL is the ticker API base URL.
	// Env: EXCHANGE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Currency is the quote currency for reported rates (e.g. "USD").
	// Env: EXCHANGE_CURRENCY
	Currency string `env:"CURRENCY"`

	// RequestTimeout bounds a single outbound rate request.
	// Env: EXCHANGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetPortalConfig loads, merges, and validates the portal configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Lenient-JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *PortalConfig or an error if any source fails
// to load or the final config fails validation.
func GetPortalConfig() (*PortalConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
