package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"excgen.dev/pkg/excgen/internal/controller"
	"excgen.dev/pkg/excgen/internal/domain"
)

var statsFormatFlag string

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how flag vectors are pruned and what the accepted tests expect",
		Long: `Validate and simulate every flag vector without writing any file, then report
how many vectors each rule pruned, the distribution of expected outcomes and
alternatives, and the resulting shard layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, ok := controller.ParseFormat(statsFormatFlag)
			if !ok {
				return fmt.Errorf("unsupported format %q (want %s or %s)", statsFormatFlag, controller.FormatTable, controller.FormatYAML)
			}

			return workflow.Stats(cmd.Context(), domain.StatsArgs{
				ShardArgs: shardArgs(),
				Format:    format,
			})
		},
	}

	cmd.Flags().StringVarP(&statsFormatFlag, formatFlagName, "f", string(controller.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
