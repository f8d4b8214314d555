// Package config provides configuration loading, merging, and validation
// for the multipool portal process.
//
// Portal-level configuration is assembled from multiple sources in the
// following priority order (later sources override earlier non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (lenient JSON, path resolved from sources 1 and 2)
//
// The main entry points are [GetPortalConfig] for the merged portal
// configuration and [LoadDefaults] for the default pool-config record
// handed to the resolver.
//
// Per-pool and per-coin documents are not handled here; they belong to
// the pool and coins packages.
package config
