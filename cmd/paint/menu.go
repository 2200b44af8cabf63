package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-paint/internal/config"
	"github.com/vovakirdan/pixel-paint/internal/painter"
	"github.com/vovakirdan/pixel-paint/internal/platform/tui"
	"github.com/vovakirdan/pixel-paint/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the terminal painter with a preset picker menu",
	Long: `Start the terminal painter in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a preset.
After quitting the canvas, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select preset
  Tab          - Session log
  Q            - Quit

Examples:
  paint menu
  paint menu --fps 30
  paint menu --db ./sessions.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Open session log storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session log", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	username := currentUser()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}

		// Keep any size changes
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsSessions {
			goBack, err := tui.RunSessions(store, width, height)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from the board
		}

		if menuResult.PresetID == "" {
			return nil
		}

		p, err := painter.NewFromPreset(menuResult.PresetID, base, config.Overrides{}, painter.WithLogger(logger))
		if err != nil {
			logger.Error("cannot create painter", "preset", menuResult.PresetID, "error", err)
			continue
		}

		if err := paintInTerminal(p); err != nil {
			logger.Error("painting failed", "preset", menuResult.PresetID, "error", err)
		}
		tui.RecordSession(store, logger, p, hostTUI, username)

		// Loop back to menu
	}
}
