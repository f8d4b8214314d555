// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the portal runtime: the coin registry, the
// algorithm capability set, the pool configuration resolver, and the
// active resolved map. It is the single owner of the map; readers (stats
// endpoint, admin listener) obtain snapshots through it.
package app

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/multipool/internal/algo"
	"github.com/MKhiriev/multipool/internal/coins"
	"github.com/MKhiriev/multipool/internal/config"
	"github.com/MKhiriev/multipool/internal/logger"
	"github.com/MKhiriev/multipool/internal/pool"
)

// App holds the assembled portal runtime. The resolved configuration map
// is swapped atomically by Reload; everything else is immutable after
// New.
type App struct {
	cfg      *config.PortalConfig
	registry *coins.Registry
	resolver *pool.Resolver
	defaults map[string]any
	logger   *logger.Logger

	mu    sync.RWMutex
	pools pool.ConfigMap
}

// New loads the coin registry and pool defaults, wires the resolver, and
// runs the initial resolution pass. Any fatal resolution condition is
// returned to the caller; the process decides whether to exit.
func New(cfg *config.PortalConfig, log *logger.Logger) (*App, error) {
	registry, err := coins.LoadDirectory(cfg.Portal.CoinConfigDir)
	if err != nil {
		return nil, fmt.Errorf("error loading coin registry: %w", err)
	}

	defaults, err := config.LoadDefaults(cfg.Portal.DefaultPoolConfigPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		registry: registry,
		resolver: pool.NewResolver(registry, algo.Supported(), log),
		defaults: defaults,
		logger:   log,
	}

	if err := a.Reload(); err != nil {
		return nil, err
	}

	return a, nil
}

// Pools returns the active resolved configuration map. The map is never
// mutated after a swap, so callers may read it without further locking.
func (a *App) Pools() pool.ConfigMap {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.pools
}

// Coins returns the names of all registered coin profiles.
func (a *App) Coins() []string {
	return a.registry.Names()
}

// Reload runs one full resolution pass over the pool config directory.
// The active map is swapped only on success; on any fatal condition the
// previous map stays in place and the error is returned.
func (a *App) Reload() error {
	docs, err := pool.LoadDirectory(a.cfg.Portal.PoolConfigDir)
	if err != nil {
		return err
	}

	resolved, err := a.resolver.Resolve(docs, a.defaults)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.pools = resolved
	a.mu.Unlock()

	a.logger.Info().Int("pools", len(resolved)).Msg("pool configuration resolved")

	return nil
}
