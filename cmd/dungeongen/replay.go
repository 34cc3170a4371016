package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/viewer"
)

var (
	flagDelay time.Duration
	flagMenu  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Animate a generation run",
	Long: `Generates a map and replays its snapshot history one frame per tick.

Controls:
  Space      - Pause / resume
  Enter      - Skip to the final map
  R          - Regenerate (after the replay)
  M          - Back to the algorithm menu
  Q/Esc      - Quit

Examples:
  dungeongen replay --algorithm cellular-automata
  dungeongen replay --algorithm bsp --delay 10ms
  dungeongen replay --menu`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Time between frames (default from config)")
	replayCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start on the algorithm menu")
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		s.Delay = flagDelay
	}
	if flagMenu {
		s.Algorithm = algorithm.None
		s.Options = nil
	}

	theme, err := cfg.UITheme()
	if err != nil {
		return err
	}

	v, err := viewer.New(s, cfg.Seed, theme, logger)
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run(cmd.Context())
}
