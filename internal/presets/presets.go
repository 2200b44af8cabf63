// Package presets holds the built-in painter variants. Each one is a small
// adjustment of the loaded configuration; they register with the registry
// on import.
package presets

import (
	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/registry"
)

// Preset is a configuration-only painter variant.
type Preset struct {
	id          string
	title       string
	description string
	configure   func(cfg *config.PainterConfig)
}

// ID returns the preset identifier.
func (p *Preset) ID() string { return p.id }

// Title returns the display name.
func (p *Preset) Title() string { return p.title }

// Description returns a one-line summary.
func (p *Preset) Description() string { return p.description }

// Configure applies the preset to cfg.
func (p *Preset) Configure(cfg *config.PainterConfig) {
	if p.configure != nil {
		p.configure(cfg)
	}
}

// Classic is the arrow cursor over a transparent canvas.
func Classic() *Preset {
	return &Preset{
		id:          "classic",
		title:       "Classic",
		description: "Arrow cursor over a blank canvas",
		configure: func(cfg *config.PainterConfig) {
			cfg.Cursor.Enabled = true
			cfg.Cursor.Shape = config.ShapeArrow
			cfg.Canvas.Gradient = false
		},
	}
}

// Bare paints without an overlay.
func Bare() *Preset {
	return &Preset{
		id:          "bare",
		title:       "Bare",
		description: "Canvas only, no cursor overlay",
		configure: func(cfg *config.PainterConfig) {
			cfg.Cursor.Enabled = false
			cfg.Canvas.Gradient = false
		},
	}
}

// Gradient starts from a generated palette and uses a crosshair cursor.
func Gradient() *Preset {
	return &Preset{
		id:          "gradient",
		title:       "Gradient",
		description: "Generated palette background with a crosshair",
		configure: func(cfg *config.PainterConfig) {
			cfg.Canvas.Gradient = true
			cfg.Cursor.Enabled = true
			cfg.Cursor.Shape = config.ShapeCrosshair
		},
	}
}

func init() {
	registry.Register("classic", func() registry.Preset {
		return Classic()
	})
	registry.Register("bare", func() registry.Preset {
		return Bare()
	})
	registry.Register("gradient", func() registry.Preset {
		return Gradient()
	})
}
