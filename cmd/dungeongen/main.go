// dungeongen generates dungeon maps and replays how they were built.
//
// Usage:
//
//	dungeongen list               - List algorithms and their options
//	dungeongen generate           - Generate one map and print it
//	dungeongen replay             - Watch a map being generated step by step
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.dungeongen/config.yaml)
//	--algorithm <id>     - Algorithm id, see 'dungeongen list'
//	--width, --height    - Map size
//	--seed <value>       - RNG seed for reproducible maps (0 = time based)
//	--opt "Name=value"   - Override an algorithm option, repeatable
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/config"
	"github.com/samdwyer/dungeongen/internal/telemetry"
)

var (
	// Global flags
	flagConfig    string
	flagAlgorithm string
	flagWidth     int
	flagHeight    int
	flagSeed      int64
	flagOpts      []string
	flagLogLevel  string
)

func main() {
	logger := newLogger("info")

	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONGEN_API_KEY available
	if err := config.LoadEnv(); err != nil {
		logger.Warn(".env file not loaded", "error", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown", "error", err)
			}
		}()
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeongen",
	Short: "Procedural dungeon generator",
	Long: `dungeongen builds 2D tile maps with one of several procedural
algorithms and records every intermediate step so the run can be replayed.

Available commands:
  list      - Show all algorithms and their options
  generate  - Generate a map and print it
  replay    - Animate a generation run in the terminal

Examples:
  dungeongen list
  dungeongen generate --algorithm rooms --seed 42
  dungeongen generate --algorithm cellular-automata --opt "Iterations=5"
  dungeongen replay --algorithm drunkards-walk --delay 20ms`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagAlgorithm, "algorithm", "", "Algorithm id (see 'dungeongen list')")
	pf.IntVar(&flagWidth, "width", 0, "Map width in tiles")
	pf.IntVar(&flagHeight, "height", 0, "Map height in tiles")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringArrayVar(&flagOpts, "opt", nil, `Algorithm option override as "Name=value"`)
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(replayCmd)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONGEN_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONGEN_DATASET")
	if dataset == "" {
		dataset = "dungeongen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dungeongen",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// setup resolves the config file, environment and flags into a session.
func setup(cmd *cobra.Command) (*algorithm.Session, config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = flagAlgorithm
	}
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	logger := newLogger(cfg.LogLevel)

	s, err := cfg.Session()
	if err != nil {
		return nil, cfg, logger, err
	}
	for _, raw := range flagOpts {
		name, value, err := parseOption(raw)
		if err != nil {
			return nil, cfg, logger, err
		}
		if err := s.SetByName(name, value); err != nil {
			return nil, cfg, logger, err
		}
	}
	return s, cfg, logger, nil
}

// parseOption splits "Name=value". Option names may contain spaces.
func parseOption(raw string) (string, int, error) {
	i := strings.LastIndex(raw, "=")
	if i <= 0 {
		return "", 0, fmt.Errorf("option %q: want Name=value", raw)
	}
	name := strings.TrimSpace(raw[:i])
	value, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
	if err != nil {
		return "", 0, fmt.Errorf("option %q: %w", raw, err)
	}
	return name, value, nil
}
