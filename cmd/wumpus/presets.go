package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wumpus/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in caves",
	Long: `Show every preset with its board size, tile odds and arrows.

Presets only change size, generation odds and ammo; the start tile and
heading come from the loaded configuration.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Available caves:")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-5s  %-5s  %-6s  %-5s  %s\n", "Preset", "Size", "Empty", "Hole", "Wumpus", "Gold", "Arrows")
	fmt.Printf("  %-8s  %-5s  %-5s  %-5s  %-6s  %-5s  %s\n", "------", "----", "-----", "----", "------", "----", "------")

	for _, p := range config.Presets() {
		cfg := config.DefaultWumpusConfig()
		config.ApplyPreset(&cfg, p)
		g := cfg.Generation
		fmt.Printf("  %-8s  %-5s  %-5s  %-5s  %-6s  %-5s  %d\n",
			p,
			fmt.Sprintf("%dx%d", cfg.Board.Size, cfg.Board.Size),
			percent(g.Empty), percent(g.Hole), percent(g.Hazard), percent(g.Treasure),
			cfg.Player.Ammo,
		)
	}

	fmt.Println()
	for _, p := range config.Presets() {
		fmt.Printf("  %-8s  %s\n", p, p.Description())
	}
	fmt.Println()
	fmt.Println("Use 'wumpus play --preset <name>' to jump straight in.")
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
