package core

// RuntimeConfig contains configuration passed to the painter at initialization.
// The host fills the screen size from its window or terminal.
type RuntimeConfig struct {
	ScreenW  int   // Canvas width in pixels
	ScreenH  int   // Canvas height in pixels
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // Seed for generated palettes
}

// DefaultConfig returns a RuntimeConfig with the classic 400x200 resolution.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  400,
		ScreenH:  200,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PainterState reports the painter's status to the host after each tick.
type PainterState struct {
	Ticks  uint64 // Ticks processed since Reset
	Pixels int    // Canvas pixel writes since Reset
	Quit   bool   // Whether the user asked to exit
}

// StepResult is returned by Painter.Step() after each tick.
type StepResult struct {
	State PainterState
}
