// Package config provides YAML-based painter configuration loading and
// preset overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/vovakirdan/pixel-paint/internal/core"
)

// PainterConfig contains all configuration for a painting session.
type PainterConfig struct {
	Window WindowConfig `yaml:"window"`
	Canvas CanvasConfig `yaml:"canvas"`
	Cursor CursorConfig `yaml:"cursor"`
	Brush  BrushConfig  `yaml:"brush"`
	Clock  ClockConfig  `yaml:"clock"`
}

// WindowConfig is passed through to the window host untouched.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Icon       string `yaml:"icon"` // Optional path to a PNG icon
}

// CanvasConfig defines the persistent paint buffer.
type CanvasConfig struct {
	Background string `yaml:"background"` // Fill color, "#rrggbb[aa]"
	Gradient   bool   `yaml:"gradient"`   // Generate a palette background instead
}

// CursorConfig defines the overlay sprite that tracks the pointer.
type CursorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Shape   string `yaml:"shape"` // "arrow", "crosshair" or "block"
	Size    int    `yaml:"size"`
	Color   string `yaml:"color"`
}

// BrushConfig defines the colors written into the canvas.
type BrushConfig struct {
	NewPath string `yaml:"new_path"` // Pixel written on press
	Drag    string `yaml:"drag"`     // Line cells written while dragging
}

// ClockConfig defines frame pacing.
type ClockConfig struct {
	Enabled     bool          `yaml:"enabled"`
	FrameTarget time.Duration `yaml:"frame_target"`
	ReportEvery uint64        `yaml:"report_every"` // Ticks between debug reports, 0 = never
}

// Cursor shapes.
const (
	ShapeArrow     = "arrow"
	ShapeCrosshair = "crosshair"
	ShapeBlock     = "block"
)

// Palette holds the parsed colors of a PainterConfig.
type Palette struct {
	Background color.RGBA
	Cursor     color.RGBA
	NewPath    color.RGBA
	Drag       color.RGBA
}

// Palette parses every color string in the config.
func (c PainterConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"canvas.background", c.Canvas.Background, &p.Background},
		{"cursor.color", c.Cursor.Color, &p.Cursor},
		{"brush.new_path", c.Brush.NewPath, &p.NewPath},
		{"brush.drag", c.Brush.Drag, &p.Drag},
	}

	for _, f := range fields {
		parsed, err := core.ParseColor(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("config: %s: %w", f.name, err)
		}
		*f.dst = parsed
	}
	return p, nil
}

// Validate checks that the config can drive a painter.
func (c PainterConfig) Validate() error {
	var errs []error

	// Pointer clamping needs a non-empty [0, size-1] range on both axes.
	if c.Window.Width < 2 || c.Window.Height < 2 {
		errs = append(errs, fmt.Errorf("config: window must be at least 2x2, got %dx%d",
			c.Window.Width, c.Window.Height))
	}
	if c.Cursor.Size < 0 {
		errs = append(errs, fmt.Errorf("config: negative cursor size %d", c.Cursor.Size))
	}
	switch c.Cursor.Shape {
	case ShapeArrow, ShapeCrosshair, ShapeBlock:
	default:
		errs = append(errs, fmt.Errorf("config: unknown cursor shape %q", c.Cursor.Shape))
	}
	if c.Clock.FrameTarget < 0 {
		errs = append(errs, fmt.Errorf("config: negative frame target %s", c.Clock.FrameTarget))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Overrides are command-line adjustments applied after presets.
// Nil fields leave the config untouched.
type Overrides struct {
	Width      *int
	Height     *int
	Fullscreen *bool
	NoCursor   bool
	Title      string
}

// ApplyOverrides modifies the config with any overrides that are set.
func ApplyOverrides(cfg *PainterConfig, o Overrides) {
	if o.Width != nil {
		cfg.Window.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Window.Height = *o.Height
	}
	if o.Fullscreen != nil {
		cfg.Window.Fullscreen = *o.Fullscreen
	}
	if o.NoCursor {
		cfg.Cursor.Enabled = false
	}
	if o.Title != "" {
		cfg.Window.Title = o.Title
	}
}
