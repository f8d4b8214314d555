package config

import (
	"fmt"

	"github.com/MKhiriev/multipool/internal/jsonc"
)

// LoadDefaults reads the default pool config document at path and returns
// it as the generic record the resolver merges into every pool document.
//
// An empty path means no defaults are configured; an empty record is
// returned so the resolver can run unconditionally.
func LoadDefaults(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	defaults := make(map[string]any)
	if err := jsonc.DecodeFile(path, &defaults); err != nil {
		return nil, fmt.Errorf("error loading default pool config: %w", err)
	}

	return defaults, nil
}
