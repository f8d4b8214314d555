// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pool

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/multipool/internal/coins"
)

// Document is one discovered pool configuration file, before parsing.
// It is immutable after discovery.
type Document struct {
	// Label is the source name used in diagnostics, normally the file name
	// (e.g. "litecoin.json").
	Label string
	// Raw is the unparsed lenient-JSON content.
	Raw []byte
}

// Config is one fully resolved pool configuration: the parsed document
// with defaults merged in, plus the resolution metadata attached by the
// resolver.
type Config struct {
	// Options is the parsed document. Keys absent from the source file are
	// filled from the portal defaults with independent clones; keys present
	// in the source are never overwritten.
	Options map[string]any

	// CoinName is the resolved lowercase coin name, the key of this entry
	// in the ConfigMap.
	CoinName string

	// Profile is a copy of the registry profile for this coin, with its
	// Name field lowered to CoinName.
	Profile coins.Profile

	// Enabled is true for every config that survives resolution; documents
	// with "enabled": false are dropped before any batch check runs.
	Enabled bool

	// SourceFile is the document label, kept for diagnostics.
	SourceFile string
}

// Ports returns the sorted port keys of the config's "ports" table, or nil
// if the table is absent or not an object.
func (c *Config) Ports() []string {
	table, ok := c.Options["ports"].(map[string]any)
	if !ok {
		return nil
	}

	ports := make([]string, 0, len(table))
	for port := range table {
		ports = append(ports, port)
	}
	sort.Strings(ports)

	return ports
}

// ConfigMap is the artifact of one resolution pass: resolved pool configs
// keyed by unique lowercase coin name. It is owned by the caller.
type ConfigMap map[string]*Config

// LoadDirectory scans dir (non-recursively) for *.json files and returns
// one Document per file, labeled with the file name.
func LoadDirectory(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading pool config directory %s: %w", dir, err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("error reading pool config %s: %w", entry.Name(), err)
		}

		docs = append(docs, Document{Label: entry.Name(), Raw: raw})
	}

	return docs, nil
}
