// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pool resolves the operator-edited pool configuration documents
// into the validated, fully merged configuration map the portal runs on.
//
// Resolution is all-or-nothing at startup: any parse failure, unknown
// coin, duplicate coin name, or port conflict aborts the whole pass with
// an error naming the offending document(s). The single recoverable
// condition is a coin whose mining algorithm this build does not
// implement; such a pool is logged and excluded without blocking the rest
// of the fleet.
package pool

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/multipool/internal/coins"
	"github.com/MKhiriev/multipool/internal/jsonc"
	"github.com/MKhiriev/multipool/internal/logger"
)

// ProfileRegistry supplies fixed coin profiles by name.
type ProfileRegistry interface {
	Get(name string) (coins.Profile, bool)
}

// AlgorithmCapability reports whether a mining algorithm is implemented
// by this build.
type AlgorithmCapability interface {
	Has(name string) bool
}

// Resolver turns discovered pool documents into a ConfigMap. It owns no
// state across calls; a Resolve call owns all intermediate data and
// returns an independent result.
type Resolver struct {
	registry ProfileRegistry
	algos    AlgorithmCapability
	logger   *logger.Logger
}

// NewResolver wires a resolver with its two collaborators and a logger
// for recoverable conditions.
func NewResolver(registry ProfileRegistry, algos AlgorithmCapability, log *logger.Logger) *Resolver {
	return &Resolver{registry: registry, algos: algos, logger: log}
}

// Resolve runs one resolution pass over docs.
//
// Per document: normalize + strict-parse, drop disabled documents, infer
// the coin name ("coin" field, then "coinName" field, then the lowercased
// file stem), look the profile up in the registry, and lowercase the
// resolved name. Disabled documents take no further part in the pass,
// including the batch checks below.
//
// Whole batch: any port declared by two documents and any coin name
// resolved by two documents is fatal, naming both source files.
//
// Per surviving document: keys present in defaults but absent from the
// document are filled with deep, independent clones (a present key is
// never overwritten, and defaults itself is never aliased or mutated);
// then documents whose profile algorithm is unsupported are logged and
// dropped. Everything else lands in the returned map keyed by lowercase
// coin name.
//
// On any fatal condition Resolve returns a nil map and an error wrapping
// the matching sentinel from errors.go.
func (r *Resolver) Resolve(docs []Document, defaults map[string]any) (ConfigMap, error) {
	candidates := make([]*Config, 0, len(docs))
	for _, doc := range docs {
		var options map[string]any
		if err := jsonc.Decode(doc.Raw, &options); err != nil {
			return nil, fmt.Errorf("%w in %s: %s", ErrParse, doc.Label, err)
		}

		if enabled, ok := options["enabled"].(bool); ok && !enabled {
			r.logger.Debug().Str("file", doc.Label).Msg("pool config disabled, skipping")
			continue
		}

		name := inferCoinName(options, doc.Label)
		if name == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingCoinIdentity, doc.Label)
		}

		profile, ok := r.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w %q in %s", ErrUnknownProfile, name, doc.Label)
		}
		profile.Name = strings.ToLower(profile.Name)

		candidates = append(candidates, &Config{
			Options:    options,
			CoinName:   profile.Name,
			Profile:    profile,
			Enabled:    true,
			SourceFile: doc.Label,
		})
	}

	if err := checkPortConflicts(candidates); err != nil {
		return nil, err
	}
	if err := checkDuplicateCoinNames(candidates); err != nil {
		return nil, err
	}

	resolved := make(ConfigMap, len(candidates))
	for _, cfg := range candidates {
		for key, value := range defaults {
			if _, ok := cfg.Options[key]; !ok {
				cfg.Options[key] = cloneValue(value)
			}
		}

		if !r.algos.Has(cfg.Profile.Algorithm) {
			r.logger.Warn().
				Str("file", cfg.SourceFile).
				Str("coin", cfg.CoinName).
				Str("algorithm", cfg.Profile.Algorithm).
				Msg("mining algorithm not implemented, pool excluded")
			continue
		}

		resolved[cfg.CoinName] = cfg
	}

	return resolved, nil
}

// inferCoinName picks the coin name from the document: an explicit "coin"
// field, then an explicit "coinName" field, then the lowercased stem of
// the source file name. Returns "" if none yields a usable name.
func inferCoinName(options map[string]any, label string) string {
	if name, ok := options["coin"].(string); ok && name != "" {
		return name
	}
	if name, ok := options["coinName"].(string); ok && name != "" {
		return name
	}

	stem := strings.TrimSuffix(filepath.Base(label), filepath.Ext(label))
	return strings.ToLower(stem)
}

// checkPortConflicts compares the port tables of every pair of candidate
// configs and fails on the first shared port.
func checkPortConflicts(candidates []*Config) error {
	for i := 0; i < len(candidates); i++ {
		ports := make(map[string]struct{})
		for _, port := range candidates[i].Ports() {
			ports[port] = struct{}{}
		}

		for j := i + 1; j < len(candidates); j++ {
			for _, port := range candidates[j].Ports() {
				if _, ok := ports[port]; ok {
					return fmt.Errorf("%w: port %s in %s and %s",
						ErrPortConflict, port, candidates[i].SourceFile, candidates[j].SourceFile)
				}
			}
		}
	}

	return nil
}

// checkDuplicateCoinNames fails when two candidate configs resolved to
// the same coin name.
func checkDuplicateCoinNames(candidates []*Config) error {
	seen := make(map[string]string, len(candidates))
	for _, cfg := range candidates {
		if first, ok := seen[cfg.CoinName]; ok {
			return fmt.Errorf("%w: %q in %s and %s",
				ErrDuplicateCoinName, cfg.CoinName, first, cfg.SourceFile)
		}
		seen[cfg.CoinName] = cfg.SourceFile
	}

	return nil
}
