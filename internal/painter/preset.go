package painter

import (
	"fmt"

	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/registry"
)

// NewFromPreset builds a painter for a registered preset: the preset adjusts
// base, then overrides are applied on top.
func NewFromPreset(id string, base config.PainterConfig, overrides config.Overrides, opts ...Option) (*Painter, error) {
	preset, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("painter: %w", err)
	}

	cfg := base
	preset.Configure(&cfg)
	config.ApplyOverrides(&cfg, overrides)

	return New(preset.ID(), preset.Title(), cfg, opts...)
}
