// Package env provides lookup of configuration values from the process
// environment and dotenv files.
package env

import (
	"os"
	"sort"
)

// Source looks up configuration values by key.
type Source interface {
	// Lookup returns the value for key and whether the key is defined.
	// A defined key may hold an empty string.
	Lookup(key string) (string, bool)

	// Name returns a human-readable name for the source.
	Name() string
}

// Process reads from the live process environment.
type Process struct{}

// Lookup implements Source.
func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Name implements Source.
func (Process) Name() string { return "process" }

// Map is an in-memory Source. A nil Map has no keys.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Name implements Source.
func (Map) Name() string { return "map" }

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Chain consults each source in order; the first one defining the key wins.
type Chain []Source

// Lookup implements Source.
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Name implements Source.
func (c Chain) Name() string {
	name := "chain("
	for i, s := range c {
		if i > 0 {
			name += ","
		}
		name += s.Name()
	}
	return name + ")"
}
