package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/viewer"
	"github.com/samdwyer/dungeongen/internal/world"
)

var flagSnapshots bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a map and print it",
	Long: `Runs one generation and prints the final map. The exit found by
pruning, if any, is marked with '>'.

Examples:
  dungeongen generate --algorithm bsp-interior --width 80 --height 50
  dungeongen generate --algorithm rooms --seed 7 --snapshots`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagSnapshots, "snapshots", false, "Print every snapshot, not just the final map")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	theme, err := cfg.UITheme()
	if err != nil {
		return err
	}

	run := viewer.Generate(cmd.Context(), s, cfg.Seed)
	out := cmd.OutOrStdout()

	if flagSnapshots {
		total := run.Frames.Total()
		for !run.Frames.Empty() {
			g, _ := run.Frames.Pop()
			fmt.Fprintf(out, "-- snapshot %d/%d --\n", run.Frames.Shown(), total)
			fmt.Fprintln(out, ui.RenderText(g, -1, theme))
		}
		fmt.Fprintln(out, "-- final --")
	}
	fmt.Fprintln(out, ui.RenderText(run.Final, run.Exit, theme))

	logger.Info("generated map",
		"algorithm", run.Algorithm.ID(),
		"width", s.Width,
		"height", s.Height,
		"seed", cfg.Seed,
		"snapshots", run.Frames.Total(),
		"floor", run.Final.Count(world.TileFloor),
		"rooms", len(run.Rooms),
	)
	return nil
}
