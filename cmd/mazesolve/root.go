package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mazesolve",
		Short:         "Exhaustive cheapest-path search through character mazes",
		Long:          `mazesolve reads a maze of '#', '.', 'S' and 'E' tiles and reports the cheapest route from S to E, where every step and every quarter turn has a cost.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mazesolve version %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", buildDate)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
		},
	}
}
