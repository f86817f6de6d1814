package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that shard files are up to date",
		Long: `Regenerate every shard in memory and compare it with the shard file on disk.
Missing, stale and leftover shard files are reported with a unified diff and
the command exits with a non-zero status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Check(cmd.Context(), shardArgs())
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
