package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-paint/internal/registry"
	"github.com/vovakirdan/pixel-paint/internal/storage"
)

var (
	flagLimit     int
	flagClear     bool
	flagSessionID string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [preset]",
	Short: "Show recorded painting sessions",
	Long: `Display the most recent painting sessions, optionally for one preset,
followed by per-preset totals.

Examples:
  paint sessions
  paint sessions classic --limit 20
  paint sessions gradient --clear
  paint sessions --id 3f2b...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded sessions instead of listing them")
	sessionsCmd.Flags().StringVar(&flagSessionID, "id", "", "Show a single session by ID")
}

func runSessions(_ *cobra.Command, args []string) error {
	var preset string
	if len(args) == 1 {
		preset = args[0]
		if !registry.Exists(preset) {
			return fmt.Errorf("unknown preset %q (run 'paint list' to see available presets)", preset)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagSessionID != "" {
		return showSession(store, flagSessionID)
	}

	if flagClear {
		n, err := store.ClearSessions(preset)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d session(s).\n", n)
		return nil
	}

	sessions, err := store.RecentSessions(preset, flagLimit)
	if err != nil {
		return err
	}

	if preset == "" {
		fmt.Println("Recent sessions")
	} else {
		fmt.Printf("Recent sessions - %s\n", preset)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'paint paint <preset>' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-6s  %-12s  %7s  %7s  %8s\n", "Date", "Preset", "Host", "User", "Strokes", "Pixels", "Time")
	fmt.Printf("  %-16s  %-10s  %-6s  %-12s  %7s  %7s  %8s\n", "----", "------", "----", "----", "-------", "------", "----")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-10s  %-6s  %-12s  %7d  %7d  %8s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Preset, s.Host, s.User,
			s.Strokes, s.Pixels, s.Duration.Round(time.Second))
	}

	stats, err := store.GetAllPresetStats()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		if preset == "" || id == preset {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Println()
	for _, id := range ids {
		ps := stats[id]
		fmt.Printf("%s: %d session(s), %d strokes, %d pixels, %s painted\n",
			id, ps.Sessions, ps.TotalStrokes, ps.TotalPixels, ps.TotalDuration.Round(time.Second))
	}
	return nil
}

func showSession(store *storage.Store, id string) error {
	s, err := store.SessionByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("no session with ID %q", id)
	}

	fmt.Printf("Session %s\n\n", s.ID)
	fmt.Printf("  Preset:   %s\n", s.Preset)
	fmt.Printf("  Host:     %s\n", s.Host)
	fmt.Printf("  User:     %s\n", s.User)
	fmt.Printf("  Date:     %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Ticks:    %d\n", s.Ticks)
	fmt.Printf("  Strokes:  %d\n", s.Strokes)
	fmt.Printf("  Pixels:   %d\n", s.Pixels)
	fmt.Printf("  Duration: %s\n", s.Duration)
	return nil
}
