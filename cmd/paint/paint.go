package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/core"
	"github.com/vovakirdan/pixel-paint/internal/painter"
	"github.com/vovakirdan/pixel-paint/internal/platform/tui"
	"github.com/vovakirdan/pixel-paint/internal/platform/window"
	"github.com/vovakirdan/pixel-paint/internal/registry"
	"github.com/vovakirdan/pixel-paint/internal/storage"
)

// Hosts accepted by --host.
const (
	hostWindow = "window"
	hostTUI    = "tui"
)

var (
	flagHost       string
	flagWidth      int
	flagHeight     int
	flagFullscreen bool
	flagNoCursor   bool
)

var paintCmd = &cobra.Command{
	Use:   "paint <preset>",
	Short: "Paint with a preset",
	Long: `Open a canvas with the specified preset.

Controls:
  Left mouse   - Click to place a pixel, drag to draw a line
  C            - Clear the canvas
  Esc/Q        - Quit

Hosts:
  window - Native window at the configured resolution (default)
  tui    - The terminal, two pixels per character cell

Examples:
  paint paint classic
  paint paint gradient --width 640 --height 480
  paint paint bare --host tui
  paint paint classic --config ./my-painter.yaml --no-cursor`,
	Args: cobra.ExactArgs(1),
	RunE: runPaint,
}

func init() {
	paintCmd.Flags().StringVar(&flagHost, "host", hostWindow, "Host: window or tui")
	paintCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (window host)")
	paintCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (window host)")
	paintCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start fullscreen (window host)")
	paintCmd.Flags().BoolVar(&flagNoCursor, "no-cursor", false, "Hide the cursor overlay")
}

func runPaint(cmd *cobra.Command, args []string) error {
	presetID := args[0]

	if !registry.Exists(presetID) {
		return fmt.Errorf("unknown preset %q (run 'paint list' to see available presets)", presetID)
	}
	if flagHost != hostWindow && flagHost != hostTUI {
		return fmt.Errorf("unknown host %q, expected %s or %s", flagHost, hostWindow, hostTUI)
	}

	logger, closeLog, err := newLogger(flagHost == hostTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	p, err := painter.NewFromPreset(presetID, base, paintOverrides(cmd), painter.WithLogger(logger))
	if err != nil {
		return err
	}

	// Open session log storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session log", "path", flagDBPath, "error", err)
		// Continue without storage - painting still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("painting started", "preset", presetID, "host", flagHost)

	var runErr error
	switch flagHost {
	case hostTUI:
		runErr = paintInTerminal(p)
	default:
		_, runErr = window.Run(p, window.Options{
			TickRate: flagFPS,
			Seed:     seed(),
			Logger:   logger,
		})
	}

	tui.RecordSession(store, logger, p, flagHost, currentUser())
	return runErr
}

// paintOverrides collects the flags that were explicitly set.
func paintOverrides(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{NoCursor: flagNoCursor}
	if cmd.Flags().Changed("width") {
		o.Width = &flagWidth
	}
	if cmd.Flags().Changed("height") {
		o.Height = &flagHeight
	}
	if cmd.Flags().Changed("fullscreen") {
		o.Fullscreen = &flagFullscreen
	}
	return o
}

// paintInTerminal runs p in the terminal at a resolution derived from the
// terminal size.
func paintInTerminal(p *painter.Painter) error {
	cols, rows := terminalSize()
	width, height := tui.CanvasSize(cols, rows)
	if width < 2 || height < 2 {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}

	_, err := tui.Run(p, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	})
	return err
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// currentUser returns the local login name for the session log.
func currentUser() string {
	u, err := user.Current()
	if err != nil {
		log.Debug("cannot resolve current user", "error", err)
		return ""
	}
	return u.Username
}
