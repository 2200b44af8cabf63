// Package registry provides a global registry for painter presets.
// Presets register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pixel-paint/internal/config"
)

// Preset is a named painter variant. A preset only adjusts configuration:
// the painting loop itself is shared by every preset.
type Preset interface {
	// ID returns a unique identifier for this preset (e.g., "classic").
	// Used for CLI commands and the session log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary shown in listings.
	Description() string

	// Configure adjusts the loaded configuration in place.
	// Command-line overrides are applied afterwards.
	Configure(cfg *config.PainterConfig)
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a preset.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PresetInfo)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from a preset's init() function.
// Panics if a preset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	p := f()
	infos[id] = PresetInfo{ID: id, Title: p.Title(), Description: p.Description()}
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new preset by its ID.
// Returns an error if the preset ID is not registered.
func Create(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
