// wumpus is a terminal Hunt the Wumpus: explore a dark cave, read the
// stench, wind and glitter around you, grab the gold and shoot the wumpus.
//
// Usage:
//
//	wumpus play             - Pick a cave and play
//	wumpus presets          - List the built-in caves
//	wumpus scores [preset]  - Show the run history
//	wumpus serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible caves
//	--db <path>        - Set database path (default: ~/.wumpus/wumpus.db)
//	--config <path>    - Use a custom wumpus.yaml
//	--preset <name>    - easy, normal, hard or legacy
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
//	--trace            - Export OpenTelemetry traces over OTLP/HTTP
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/storage"
	"github.com/vovakirdan/tui-wumpus/internal/telemetry"
)

// Environment variables that provide defaults for the matching flags.
const (
	envDB     = "WUMPUS_DB"
	envConfig = "WUMPUS_CONFIG"
	envPreset = "WUMPUS_PRESET"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
	flagTrace    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wumpus",
	Short: "Hunt the Wumpus in your terminal",
	Long: `Hunt the Wumpus is a turn-based cave crawler for the terminal.

Every tile you stand on whispers about its neighbours:
  S stench  - a wumpus is next to you
  W wind    - a hole is next to you
  G glitter - gold is right here

Pressing a direction first turns you, pressing it again walks.
Walk into a hole or a wumpus and the cave starts over.

Available commands:
  play     - Pick a cave and play
  presets  - List the built-in caves
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  wumpus play
  wumpus play --preset hard --seed 42
  wumpus scores normal
  wumpus serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// .env is optional; variables may also be set directly
		_ = godotenv.Load()
		applyEnvDefaults(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database (env "+envDB+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom wumpus.yaml (env "+envConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Cave preset: easy, normal, hard, legacy (env "+envPreset+")")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "Export traces to the OTLP endpoint in OTEL_EXPORTER_OTLP_ENDPOINT")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command) {
	fromEnv := func(name, env string, dst *string) {
		if cmd.Flags().Changed(name) {
			return
		}
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	fromEnv("db", envDB, &flagDBPath)
	fromEnv("config", envConfig, &flagConfig)
	fromEnv("preset", envPreset, &flagPreset)

	if !cmd.Flags().Changed("trace") && telemetry.Enabled() {
		flagTrace = true
	}
}

// loadConfig loads the configuration and resolves the preset flag.
func loadConfig() (config.WumpusConfig, config.Preset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.WumpusConfig{}, config.PresetNone, err
	}
	cfg, err := config.LoadWumpus(flagConfig)
	if err != nil {
		return cfg, preset, err
	}
	return cfg, preset, nil
}

// newLogger builds the application logger. Without a log file, output goes
// to fallback, which is io.Discard for full-screen commands.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// setupTracing starts the OTLP exporter when tracing is enabled. Failures
// are logged and tracing falls back to a no-op tracer.
func setupTracing(ctx context.Context, logger *log.Logger) (trace.Tracer, func()) {
	if !flagTrace {
		return telemetry.NoopTracer(), func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", "error", err)
		return telemetry.NoopTracer(), func() {}
	}

	return telemetry.Tracer("tui"), func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("error shutting down telemetry", "error", err)
		}
	}
}
