// Package algo describes the mining hash algorithms this build of the
// portal can serve. A pool whose coin profile names an algorithm outside
// this set is excluded at configuration-resolution time.
package algo

import (
	"sort"
	"strings"
)

// Properties holds per-algorithm constants used for difficulty and
// hashrate presentation.
type Properties struct {
	// Multiplier converts share difficulty to network difficulty units.
	Multiplier float64
	// HashrateUnit is the display unit for this algorithm's hashrate
	// (e.g. "H/s", "Sol/s").
	HashrateUnit string
}

// Set is an index of supported algorithms keyed by lowercase name.
type Set map[string]Properties

// Supported returns the algorithm set implemented by this build.
func Supported() Set {
	return Set{
		"sha256":    {Multiplier: 1, HashrateUnit: "H/s"},
		"scrypt":    {Multiplier: 65536, HashrateUnit: "H/s"},
		"x11":       {Multiplier: 1, HashrateUnit: "H/s"},
		"equihash":  {Multiplier: 1, HashrateUnit: "Sol/s"},
		"verushash": {Multiplier: 1, HashrateUnit: "H/s"},
	}
}

// Has reports whether name (case-insensitive) is a supported algorithm.
func (s Set) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Properties returns the constants for name (case-insensitive).
func (s Set) Properties(name string) (Properties, bool) {
	p, ok := s[strings.ToLower(name)]
	return p, ok
}

// Names returns the supported algorithm names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
