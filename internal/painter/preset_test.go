package painter

import (
	"testing"

	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/registry"
)

type testPreset struct{}

func (testPreset) ID() string          { return "painter-test" }
func (testPreset) Title() string       { return "Painter Test" }
func (testPreset) Description() string { return "block cursor" }
func (testPreset) Configure(cfg *config.PainterConfig) {
	cfg.Cursor.Shape = config.ShapeBlock
	cfg.Cursor.Size = 4
}

func init() {
	registry.Register("painter-test", func() registry.Preset { return testPreset{} })
}

func TestNewFromPreset(t *testing.T) {
	width := 320
	p, err := NewFromPreset("painter-test", config.DefaultPainterConfig(),
		config.Overrides{Width: &width, NoCursor: true})
	if err != nil {
		t.Fatalf("NewFromPreset() failed: %v", err)
	}

	if p.ID() != "painter-test" || p.Title() != "Painter Test" {
		t.Errorf("painter = %q/%q", p.ID(), p.Title())
	}

	cfg := p.Config()
	if cfg.Cursor.Shape != config.ShapeBlock || cfg.Cursor.Size != 4 {
		t.Errorf("preset not applied: %+v", cfg.Cursor)
	}
	// Overrides win over the preset
	if cfg.Cursor.Enabled {
		t.Error("NoCursor override should disable the cursor")
	}
	if cfg.Window.Width != 320 {
		t.Errorf("window width = %d, expected 320", cfg.Window.Width)
	}
}

func TestNewFromPresetUnknown(t *testing.T) {
	if _, err := NewFromPreset("missing", config.DefaultPainterConfig(), config.Overrides{}); err == nil {
		t.Error("NewFromPreset() with an unknown preset should fail")
	}
}
