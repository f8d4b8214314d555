// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [PortalConfig] satisfies the
// portal's startup invariants.
//
// Both document directories are required; everything else is optional
// (an empty Website or CLI address disables that surface, an empty
// Exchange base URL disables rate fetching).
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *PortalConfig) validate() error {
	if cfg.Portal.PoolConfigDir == "" || cfg.Portal.CoinConfigDir == "" {
		return ErrInvalidPortalConfigs
	}

	if cfg.Exchange.BaseURL != "" && cfg.Exchange.RequestTimeout == 0 {
		return ErrInvalidExchangeConfigs
	}

	return nil
}
