package commands

import "github.com/spf13/cobra"

func GetRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "psim",
		Short: "psim runs Prim's algorithm over a group of cooperating processes.",
		Long: `psim is a command line tool that drives the group messaging library.
It computes a Minimum Spanning Tree with Prim's algorithm, either
sequentially or in parallel across a process group, and can evaluate
the library's topology predicates directly.

PSIM_PROCS can be set to override the default group size for "run".`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		GetRunCommand(),
		GetTopologyCommand(),
		GetVersionCommand(),
	)

	return cmd
}
