package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/core"
	"github.com/vovakirdan/tui-wumpus/internal/platform/tui"
	"github.com/vovakirdan/tui-wumpus/internal/storage"
)

var flagReveal bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Enter the cave",
	Long: `Start a game. Without --preset or --config a menu lets you pick a cave.

Controls:
  Arrows/WASD  - Face a direction; press again to walk
  Space/F      - Shoot an arrow the way you face
  R            - New cave
  V            - Reveal the map (display only)
  Tab          - Run history
  ?            - All keys
  Esc/B        - Back to the menu
  Q/Ctrl+C     - Quit

Examples:
  wumpus play
  wumpus play --preset legacy
  wumpus play --config ./my-cave.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Start with the whole cave revealed")
}

func runPlay(cmd *cobra.Command, _ []string) {
	base, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("wumpus", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tracer, stopTracing := setupTracing(context.Background(), logger)

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		// Continue without storage - game still works
	}

	runErr := tui.Run(tui.SessionOptions{
		Base:     base,
		Preset:   preset,
		SkipMenu: preset != config.PresetNone || flagConfig != "",
		Store:    store,
		Logger:   logger,
		Tracer:   tracer,
		Config:   rc,
		Reveal:   flagReveal,
	})

	// Release resources before potential exit
	if store != nil {
		store.Close()
	}
	stopTracing()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
