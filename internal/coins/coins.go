// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package coins holds the coin profile registry: fixed descriptive records
// for every cryptocurrency the portal knows about, loaded once at startup
// from a directory of per-coin JSON documents.
package coins

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/multipool/internal/jsonc"
)

var (
	// ErrMissingName indicates a coin document without a "name" field.
	ErrMissingName = errors.New("coin profile has no name")
	// ErrDuplicateName indicates two coin documents declaring the same name.
	ErrDuplicateName = errors.New("duplicate coin profile name")
)

// Explorer holds block-explorer URL templates shown on the stats pages.
type Explorer struct {
	// BlockURL is the URL template for a block hash (e.g.
	// "https://explorer.example.com/block/").
	BlockURL string `json:"blockURL"`
	// TxURL is the URL template for a transaction hash.
	TxURL string `json:"txURL"`
}

// Profile is the fixed descriptive record for one supported coin. It is
// owned by the registry; callers receive value copies and may mutate them
// freely without affecting registry state.
type Profile struct {
	// Name is the canonical coin name (e.g. "Litecoin"). Registry lookups
	// are case-insensitive on this field.
	Name string `json:"name"`

	// Symbol is the ticker symbol (e.g. "LTC").
	Symbol string `json:"symbol"`

	// Algorithm is the mining hash algorithm name (e.g. "scrypt",
	// "verushash"). Pools referencing a profile whose algorithm is not
	// implemented are excluded at resolution time.
	Algorithm string `json:"algorithm"`

	// PeerMagic is the network magic in hex used when talking to coin
	// daemons (passthrough, not interpreted by the portal).
	PeerMagic string `json:"peerMagic"`

	// AddressVersion is the base58 address version byte.
	AddressVersion int `json:"addressVersion"`

	// TxMessages reports whether the coin supports transaction messages.
	TxMessages bool `json:"txMessages"`

	// Explorer holds optional block-explorer links for this coin.
	Explorer Explorer `json:"explorer"`
}

// Registry is an in-memory index of coin profiles keyed by lowercase name.
// It is populated once by LoadDirectory and read-only afterwards.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry builds a registry from the given profiles.
// Profiles without a name or with a name already present (case-insensitive)
// are rejected.
func NewRegistry(profiles []Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile, len(profiles))}

	for _, p := range profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("%w (symbol %q)", ErrMissingName, p.Symbol)
		}

		key := strings.ToLower(p.Name)
		if _, ok := r.profiles[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, key)
		}
		r.profiles[key] = p
	}

	return r, nil
}

// LoadDirectory reads every *.json document in dir (non-recursively)
// through the lenient JSON decoder and builds a registry from them.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading coin profile directory %s: %w", dir, err)
	}

	profiles := make([]Profile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		var p Profile
		if err := jsonc.DecodeFile(filepath.Join(dir, entry.Name()), &p); err != nil {
			return nil, fmt.Errorf("error loading coin profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return NewRegistry(profiles)
}

// Get returns the profile registered under name (case-insensitive) as a
// value copy.
func (r *Registry) Get(name string) (Profile, bool) {
	p, ok := r.profiles[strings.ToLower(name)]
	return p, ok
}

// Names returns all registered coin names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
