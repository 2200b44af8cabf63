package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/painter.yaml
var defaultPainterYAML []byte

// DefaultPainterConfig returns the default painter configuration.
func DefaultPainterConfig() PainterConfig {
	return PainterConfig{
		Window: WindowConfig{
			Title:      "paint",
			Width:      400,
			Height:     200,
			Fullscreen: false,
		},
		Canvas: CanvasConfig{
			Background: "#00000000",
		},
		Cursor: CursorConfig{
			Enabled: true,
			Shape:   ShapeArrow,
			Size:    10,
			Color:   "#ffffffff",
		},
		Brush: BrushConfig{
			NewPath: "#64c864ff",
			Drag:    "#ffc864ff",
		},
		Clock: ClockConfig{
			Enabled:     true,
			FrameTarget: 30 * time.Millisecond,
			ReportEvery: 15,
		},
	}
}
