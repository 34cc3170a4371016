package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/algorithm"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all algorithms",
	Long:  `Shows every generation algorithm with its option names, defaults and ranges.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	maxIDLen := 2 // "ID" header
	for _, a := range algorithm.All() {
		if len(a.ID()) > maxIDLen {
			maxIDLen = len(a.ID())
		}
	}

	fmt.Fprintln(out, "Available algorithms:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, a := range algorithm.All() {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, a.ID(), a.Description())
		for _, o := range a.Options() {
			fmt.Fprintf(out, "  %-*s    %-22s %4d  [%d, %d]\n", maxIDLen, "", o.Name, o.Value, o.Min, o.Max)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, `Run 'dungeongen generate --algorithm <id> --opt "Name=value"' to build a map.`)
}
