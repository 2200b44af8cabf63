// paint is a minimal pixel-canvas painter. Click to place a pixel, drag to
// draw a line, C clears the canvas and Esc/Q quits.
//
// Usage:
//
//	paint list                 - List available presets
//	paint paint <preset>       - Paint with a preset
//	paint menu                 - Pick presets interactively in the terminal
//	paint serve                - Serve the terminal painter over SSH
//	paint sessions [preset]    - Show recorded painting sessions
//
// Global flags:
//
//	--config <path>     - Painter config YAML
//	--db <path>         - Session log database (default: ~/.paint/sessions.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--fps <rate>        - Host tick rate (default: 60)
//	--seed <value>      - Seed for generated palettes
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import presets to register them
	_ "github.com/vovakirdan/pixel-paint/internal/presets"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagFPS      int
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paint",
	Short: "paint - a minimal pixel-canvas painter",
	Long: `paint is a small pixel painter. It runs in a native window or right
in your terminal, where every character cell shows two pixels.

Available commands:
  list      - Show all available presets
  paint     - Paint with a specific preset
  menu      - Interactive preset picker in the terminal
  serve     - Start SSH server for remote painting
  sessions  - View recorded painting sessions

Examples:
  paint list
  paint paint classic
  paint paint gradient --host tui
  paint menu
  paint serve --ssh :2222
  paint sessions classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to painter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paint/sessions.db", "Path to session log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Palette seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(paintCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// newLogger builds the process logger from the global flags. When the
// terminal belongs to the painter and no log file is set, logs are dropped.
// The returned closer must be called on exit.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case ownsTerminal:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "paint",
		Level:           level,
	})
	return logger, closeFn, nil
}

// seed returns the --seed flag, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
