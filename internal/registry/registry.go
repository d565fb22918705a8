// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI and
// the frontends to discover presets without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/space-shooter/internal/config"
)

// Variant describes a named configuration preset.
type Variant struct {
	// ID is the unique identifier used on the command line (e.g., "classic").
	ID string

	// Title is a human-readable name for menus.
	Title string

	// Description is a one-line summary of how the variant plays.
	Description string

	// Defaults returns a fresh copy of the variant's configuration.
	Defaults func() config.ShooterConfig
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered or has no defaults.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" || v.Defaults == nil {
		panic("registry: variant needs an ID and a Defaults function")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Defaults returns the configuration of the named variant.
// It satisfies config.Resolver.
func Defaults(id string) (config.ShooterConfig, error) {
	v, err := Lookup(id)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	return v.Defaults(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
