package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/core"
	"github.com/vovakirdan/tui-wumpus/internal/platform/tui"
	"github.com/vovakirdan/tui-wumpus/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresAll    bool
	flagScoresRun    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show the run history",
	Long: `Display the best runs for a preset (default: normal).
Runs loaded from a custom configuration are listed under "custom".

Examples:
  wumpus scores
  wumpus scores hard --limit 20
  wumpus scores --tui
  wumpus scores --recent
  wumpus scores --all
  wumpus scores --run 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  wumpus scores legacy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the preset")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs of every preset")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every preset")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
}

func runScores(_ *cobra.Command, args []string) {
	preset := string(config.PresetNormal)
	if len(args) == 1 {
		preset = args[0]
		if preset != "custom" {
			p, err := config.ParsePreset(preset)
			if err != nil || p == config.PresetNone {
				fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", preset)
				fmt.Fprintln(os.Stderr, "Run 'wumpus presets' to see available caves.")
				os.Exit(1)
			}
			preset = string(p)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		rc := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rc.ScreenW, rc.ScreenH = w, h
		}
		if err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH, preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	case flagScoresRun != "":
		printRun(store, flagScoresRun)
		return
	case flagScoresRecent:
		printRecent(store)
		return
	case flagScoresAll:
		printAllStats(store)
		return
	}

	if flagScoresClear {
		if err := store.ClearRuns(preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared run history for %s.\n", preset)
		return
	}

	runs, err := store.TopRuns(preset, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Run History - %s\n", preset)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wumpus play --preset %s' to make history!\n", preset)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-5s  %-5s  %s\n", "Rank", "Gold", "Result", "Moves", "Shots", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-5s  %-5s  %s\n", "----", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7s  %-8s  %-5d  %-5d  %s\n",
			i+1,
			fmt.Sprintf("%d/%d", r.Score, r.TotalScore),
			runResult(r),
			r.Moves,
			r.ShotsFired,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.GetPresetStats(preset); err == nil {
		fmt.Printf("Runs: %d   Won: %d (%.0f%%)   Deaths: %d   Avg gold: %.1f\n",
			stats.RunsCount, stats.Wins, stats.WinRate()*100, stats.Deaths, stats.AvgScore)
	}
	if best, err := store.BestScore(preset); err == nil {
		fmt.Printf("Best: %d gold\n", best)
	}
}

// runResult describes how a run ended.
func runResult(r storage.RunRecord) string {
	if r.Won {
		return "won"
	}
	return r.Cause
}

func printRun(store *storage.Store, runID string) {
	r, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}
	if r == nil {
		fmt.Printf("No run with ID %s.\n", runID)
		return
	}

	fmt.Printf("Run %s\n\n", r.RunID)
	fmt.Printf("  Preset:  %s (%dx%d)\n", r.Preset, r.BoardSize, r.BoardSize)
	fmt.Printf("  Gold:    %d/%d\n", r.Score, r.TotalScore)
	fmt.Printf("  Result:  %s\n", runResult(*r))
	fmt.Printf("  Moves:   %d\n", r.Moves)
	fmt.Printf("  Shots:   %d\n", r.ShotsFired)
	fmt.Printf("  Played:  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}

func printRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-7s  %-8s  %s\n", "Date", "Preset", "Gold", "Result", "Run")
	fmt.Printf("  %-16s  %-8s  %-7s  %-8s  %s\n", "----", "------", "----", "------", "---")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-7s  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Preset,
			fmt.Sprintf("%d/%d", r.Score, r.TotalScore),
			runResult(r),
			r.RunID,
		)
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllPresetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("All caves")
	fmt.Println()
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	names := make([]string, 0, len(all))
	for _, p := range config.Presets() {
		names = append(names, string(p))
	}
	names = append(names, "custom")

	fmt.Printf("  %-8s  %-5s  %-5s  %-6s  %-5s  %s\n", "Preset", "Runs", "Won", "Deaths", "Best", "Last played")
	fmt.Printf("  %-8s  %-5s  %-5s  %-6s  %-5s  %s\n", "------", "----", "---", "------", "----", "-----------")
	for _, name := range names {
		st, ok := all[name]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-5d  %-6d  %-5d  %s\n",
			name, st.RunsCount, st.Wins, st.Deaths, st.BestScore,
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
}
