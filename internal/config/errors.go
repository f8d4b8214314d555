package config

import "errors"

// Validation errors returned by [PortalConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPortalConfigs indicates missing document locations (for
	// example, an empty pool config or coin profile directory).
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidExchangeConfigs indicates invalid exchange client settings
	// (for example, a base URL with no request timeout).
	ErrInvalidExchangeConfigs = errors.New("invalid exchange configuration")
)
